package outbox_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/pkg/platform/outbox"
	txcontext "hsse/pkg/platform/tx"
)

func TestPostgresStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := outbox.NewPostgresStore(db)
	now := time.Now()
	rec, err := outbox.NewRecord("audit", "42", "audit.created", map[string]string{"k": "v"}, now)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox")).
		WithArgs(rec.ID, "audit", "42", "audit.created", rec.Payload, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Append(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendJoinsTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	store := outbox.NewPostgresStore(db)
	rec, err := outbox.NewRecord("audit", "1", "audit.created", nil, time.Now())
	require.NoError(t, err)

	err = txcontext.NewSQLRunner(db, time.Second).RunInTx(context.Background(), func(ctx context.Context) error {
		return store.Append(ctx, rec)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert outbox entry")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_FetchUnpublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "created_at", "attempts", "last_error"}).
		AddRow(id.String(), "audit", "7", "audit.started", []byte(`{}`), created, 1, "timeout")
	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox")).WithArgs(10).WillReturnRows(rows)

	recs, err := outbox.NewPostgresStore(db).FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].ID)
	assert.Equal(t, "audit.started", recs[0].EventType)
	assert.Equal(t, 1, recs[0].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Mark(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := outbox.NewPostgresStore(db)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET published_at = $1 WHERE id = ANY($2)")).
		WithArgs(at, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET attempts = attempts + 1")).
		WithArgs("broker down", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, store.MarkPublished(context.Background(), ids, at))
	require.NoError(t, store.MarkFailed(context.Background(), ids, "broker down"))
	require.NoError(t, store.MarkPublished(context.Background(), nil, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
