package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	id "hsse/pkg/domain"
)

const (
	findingNumberPrefix    = "FND"
	inspectionNumberPrefix = "IN"
	numberDateLayout       = "20060102"
	numberSuffixLength     = 6
)

// NumberGenerator produces human-readable identifiers of the form
// PREFIX-yyyyMMdd-XXXXXX where the suffix is six uppercase hex characters
// taken from a random UUID.
type NumberGenerator struct {
	newUUID func() uuid.UUID
}

// NewNumberGenerator returns a generator backed by source, or uuid.New when nil.
func NewNumberGenerator(source func() uuid.UUID) *NumberGenerator {
	if source == nil {
		source = uuid.New
	}
	return &NumberGenerator{newUUID: source}
}

var defaultNumbers = NewNumberGenerator(nil)

// DefaultNumberGenerator is shared by callers that don't need a fixed suffix.
func DefaultNumberGenerator() *NumberGenerator { return defaultNumbers }

func (g *NumberGenerator) AuditNumber(t AuditType, now time.Time) string {
	return g.format(t.NumberPrefix(), now)
}

func (g *NumberGenerator) InspectionNumber(now time.Time) string {
	return g.format(inspectionNumberPrefix, now)
}

func (g *NumberGenerator) FindingNumber(now time.Time) string {
	return g.format(findingNumberPrefix, now)
}

func (g *NumberGenerator) format(prefix string, now time.Time) string {
	hex := strings.ReplaceAll(g.newUUID().String(), "-", "")
	return prefix + "-" + now.UTC().Format(numberDateLayout) + "-" + strings.ToUpper(hex[:numberSuffixLength])
}

// ItemNumber derives an item's number from its audit and position.
func ItemNumber(auditID id.AuditID, sortOrder int) string {
	return fmt.Sprintf("AI-%06d-%03d", int64(auditID), sortOrder)
}
