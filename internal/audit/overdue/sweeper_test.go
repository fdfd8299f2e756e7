package overdue_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/audit/metrics"
	"hsse/internal/audit/models"
	"hsse/internal/audit/overdue"
	"hsse/internal/audit/service"
	"hsse/internal/audit/store"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
	"hsse/pkg/requestcontext"
	"hsse/pkg/testutil"
)

var (
	fixedNow  = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	auditorID = id.UserID(uuid.MustParse("11111111-2222-4333-8444-555555555555"))
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scheduleAudit(t *testing.T, svc *service.Service, date time.Time) id.AuditID {
	t.Helper()
	ctx := requestcontext.WithTime(context.Background(), fixedNow)
	a, err := svc.Create(ctx, service.CreateCommand{Info: models.BasicInfo{
		Title:         "Boiler room walk",
		Type:          models.AuditTypeSafety,
		Category:      models.AuditCategoryPlanned,
		Priority:      models.AuditPriorityMedium,
		ScheduledDate: date,
		AuditorID:     auditorID,
	}})
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, a.ID(), date)
	require.NoError(t, err)
	return a.ID()
}

func TestSweeper_SweepOnce(t *testing.T) {
	testutil.Given(t, "two past-due audits and one in the future", func(t *testing.T) {
		svc := service.New(store.NewInMemoryStore(), service.WithLogger(discard()))
		late1 := scheduleAudit(t, svc, fixedNow.Add(time.Hour))
		late2 := scheduleAudit(t, svc, fixedNow.Add(2*time.Hour))
		future := scheduleAudit(t, svc, fixedNow.Add(72*time.Hour))

		m := metrics.NewWith(prometheus.NewRegistry())
		sweeper := overdue.New(svc,
			overdue.WithLogger(discard()),
			overdue.WithMetrics(m),
			overdue.WithClock(func() time.Time { return fixedNow.Add(24 * time.Hour) }),
		)

		testutil.When(t, "the sweeper runs", func(t *testing.T) {
			res, err := sweeper.SweepOnce(context.Background())
			require.NoError(t, err)

			testutil.Then(t, "only past-due audits are flagged", func(t *testing.T) {
				assert.Equal(t, overdue.Result{Candidates: 2, Marked: 2}, res)
				for _, auditID := range []id.AuditID{late1, late2} {
					a, err := svc.Get(context.Background(), auditID)
					require.NoError(t, err)
					assert.Equal(t, models.AuditStatusOverdue, a.Status())
				}
				a, err := svc.Get(context.Background(), future)
				require.NoError(t, err)
				assert.Equal(t, models.AuditStatusScheduled, a.Status())
			})

			testutil.And(t, "a second sweep finds nothing", func(t *testing.T) {
				res, err := sweeper.SweepOnce(context.Background())
				require.NoError(t, err)
				assert.Zero(t, res.Candidates)
			})
		})
	})
}

func TestSweeper_IsolatesFailures(t *testing.T) {
	marker := &fakeMarker{
		due: []id.AuditID{1, 2, 3},
		errs: map[id.AuditID]error{
			2: dErrors.New(dErrors.CodeIllegalStateTransition, "cannot mark overdue audit in status in_progress"),
			3: errors.New("connection reset"),
		},
	}
	sweeper := overdue.New(marker, overdue.WithLogger(discard()), overdue.WithConcurrency(2))

	res, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overdue.Result{Candidates: 3, Marked: 1, Skipped: 1, Failed: 1}, res)
	assert.ElementsMatch(t, []id.AuditID{1, 2, 3}, marker.calls())
}

func TestSweeper_ListFailure(t *testing.T) {
	marker := &fakeMarker{listErr: errors.New("db down")}
	_, err := overdue.New(marker, overdue.WithLogger(discard())).SweepOnce(context.Background())
	assert.Error(t, err)
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	marker := &fakeMarker{}
	sweeper := overdue.New(marker, overdue.WithLogger(discard()), overdue.WithInterval(10*time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := sweeper.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, marker.listCalls(), 2)
}

type fakeMarker struct {
	mu      sync.Mutex
	due     []id.AuditID
	errs    map[id.AuditID]error
	listErr error
	marked  []id.AuditID
	lists   int
}

func (f *fakeMarker) DueForOverdue(context.Context, int) ([]id.AuditID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	return f.due, f.listErr
}

func (f *fakeMarker) MarkOverdue(_ context.Context, auditID id.AuditID) (*models.Audit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, auditID)
	return nil, f.errs[auditID]
}

func (f *fakeMarker) calls() []id.AuditID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]id.AuditID(nil), f.marked...)
}

func (f *fakeMarker) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}
