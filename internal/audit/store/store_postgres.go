package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	"hsse/pkg/platform/sentinel"
	txcontext "hsse/pkg/platform/tx"
)

// Schema creates the audits table. Indexed columns are projections of the
// document used for filtering and the overdue sweep.
const Schema = `
CREATE SEQUENCE IF NOT EXISTS audit_id_seq;
CREATE TABLE IF NOT EXISTS audits (
	id BIGINT PRIMARY KEY,
	number TEXT NOT NULL UNIQUE,
	status TEXT NOT NULL,
	audit_type TEXT NOT NULL,
	risk_level TEXT NOT NULL,
	scheduled_date TIMESTAMPTZ NOT NULL,
	document JSONB NOT NULL,
	version BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audits_status_scheduled ON audits (status, scheduled_date);
`

const uniqueViolation = "23505"

// PostgresStore persists audits in PostgreSQL, joining the caller's
// transaction when one is present in the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Init applies Schema.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

func (s *PostgresStore) NextID(ctx context.Context) (id.AuditID, error) {
	var next int64
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT nextval('audit_id_seq')`).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocate audit id: %w", err)
	}
	return id.AuditID(next), nil
}

func (s *PostgresStore) Create(ctx context.Context, audit *models.Audit) error {
	rec := audit.ToRecord()
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal audit: %w", err)
	}
	query := `
		INSERT INTO audits (id, number, status, audit_type, risk_level, scheduled_date, document, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		int64(rec.ID), rec.Number, string(rec.Status), string(rec.Type), string(rec.RiskLevel),
		rec.ScheduledDate, doc, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	audit.SetVersion(1)
	return nil
}

// Save writes the aggregate when the stored version still matches the one it
// was loaded with.
func (s *PostgresStore) Save(ctx context.Context, audit *models.Audit) error {
	rec := audit.ToRecord()
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal audit: %w", err)
	}
	query := `
		UPDATE audits
		SET status = $1, audit_type = $2, risk_level = $3, scheduled_date = $4,
			document = $5, version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		string(rec.Status), string(rec.Type), string(rec.RiskLevel), rec.ScheduledDate,
		doc, rec.UpdatedAt, int64(rec.ID), rec.Version,
	)
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	if n == 0 {
		return sentinel.ErrConflict
	}
	audit.SetVersion(rec.Version + 1)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	var doc []byte
	var version int64
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT document, version FROM audits WHERE id = $1`, int64(auditID),
	).Scan(&doc, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find audit by id: %w", err)
	}
	return decode(doc, version)
}

func (s *PostgresStore) List(ctx context.Context, filter ListFilter) ([]*models.Audit, error) {
	query := `
		SELECT document, version FROM audits
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR audit_type = $2)
		ORDER BY id
		LIMIT $3
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, string(filter.Status), string(filter.Type), filter.limit())
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	var out []*models.Audit
	for rows.Next() {
		var doc []byte
		var version int64
		if err := rows.Scan(&doc, &version); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		a, err := decode(doc, version)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audits: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) ListDueForOverdue(ctx context.Context, now time.Time, limit int) ([]id.AuditID, error) {
	query := `
		SELECT id FROM audits
		WHERE status = ANY($1) AND scheduled_date < $2
		ORDER BY scheduled_date
		LIMIT $3
	`
	statuses := pq.Array([]string{string(models.AuditStatusScheduled)})
	rows, err := s.execer(ctx).QueryContext(ctx, query, statuses, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list overdue audits: %w", err)
	}
	defer rows.Close()

	var out []id.AuditID
	for rows.Next() {
		var raw int64
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan audit id: %w", err)
		}
		out = append(out, id.AuditID(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overdue audits: %w", err)
	}
	return out, nil
}

func decode(doc []byte, version int64) (*models.Audit, error) {
	var rec models.AuditRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal audit: %w", err)
	}
	rec.Version = version
	return models.FromRecord(rec), nil
}

// isUniqueViolation recognises the error shape of both supported drivers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
