// Package domain holds typed identifiers shared across modules.
//
// Aggregate and child identifiers are integers because the human-readable item
// number embeds the audit id zero-padded. People and files are identified by
// UUIDs. Construct values from external input with the Parse functions only;
// direct conversion bypasses validation.
package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "hsse/pkg/domain-errors"
)

type (
	AuditID      int64
	ItemID       int64
	FindingID    int64
	UserID       uuid.UUID
	AttachmentID uuid.UUID
	CommentID    uuid.UUID
)

const maxNumericIDLength = 19

func parseNumeric(raw, name string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" is required")
	}
	if len(raw) > maxNumericIDLength {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" is too long")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+name)
	}
	return n, nil
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, name+" is required")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+name)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, name+" cannot be nil")
	}
	return u, nil
}

func ParseAuditID(raw string) (AuditID, error) {
	n, err := parseNumeric(raw, "audit_id")
	return AuditID(n), err
}

func ParseItemID(raw string) (ItemID, error) {
	n, err := parseNumeric(raw, "item_id")
	return ItemID(n), err
}

func ParseFindingID(raw string) (FindingID, error) {
	n, err := parseNumeric(raw, "finding_id")
	return FindingID(n), err
}

func ParseUserID(raw string) (UserID, error) {
	u, err := parseUUID(raw, "user_id")
	return UserID(u), err
}

func ParseAttachmentID(raw string) (AttachmentID, error) {
	u, err := parseUUID(raw, "attachment_id")
	return AttachmentID(u), err
}

func NewAttachmentID() AttachmentID { return AttachmentID(uuid.New()) }
func NewCommentID() CommentID       { return CommentID(uuid.New()) }

func (id AuditID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id ItemID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id FindingID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UserID) String() string       { return uuid.UUID(id).String() }
func (id UserID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id AttachmentID) String() string { return uuid.UUID(id).String() }
func (id CommentID) String() string    { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = UserID(uuid.Nil)
		return nil
	}
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id AttachmentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *AttachmentID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = AttachmentID(u)
	return nil
}

func (id CommentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *CommentID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = CommentID(u)
	return nil
}
