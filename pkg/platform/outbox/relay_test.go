package outbox_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"hsse/pkg/platform/outbox"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []outbox.Record
	err       error
	calls     int
}

func (p *fakePublisher) Publish(_ context.Context, records []outbox.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, records...)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type RelaySuite struct {
	suite.Suite
	store     *outbox.MemoryStore
	publisher *fakePublisher
	metrics   *outbox.Metrics
	now       time.Time
}

func TestRelaySuite(t *testing.T) {
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupTest() {
	s.store = outbox.NewMemoryStore()
	s.publisher = &fakePublisher{}
	s.metrics = outbox.NewMetricsWith(prometheus.NewRegistry())
	s.now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
}

func (s *RelaySuite) newRelay(opts ...outbox.Option) *outbox.Relay {
	base := []outbox.Option{
		outbox.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		outbox.WithMetrics(s.metrics),
		outbox.WithClock(func() time.Time { return s.now }),
	}
	return outbox.NewRelay(s.store, s.publisher, append(base, opts...)...)
}

func (s *RelaySuite) appendRecords(n int) {
	for i := 0; i < n; i++ {
		rec, err := outbox.NewRecord("audit", "1", "audit.created", map[string]int{"seq": i}, s.now)
		s.Require().NoError(err)
		s.Require().NoError(s.store.Append(context.Background(), rec))
	}
}

func (s *RelaySuite) TestRelayOnce() {
	s.Run("publishes pending records in batches and marks them", func() {
		s.appendRecords(3)
		relay := s.newRelay(outbox.WithBatchSize(2))

		n, err := relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(2, n)
		n, err = relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)
		n, err = relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(0, n)

		s.Len(s.publisher.published, 3)
		s.JSONEq(`{"seq":0}`, string(s.publisher.published[0].Payload))
		for _, r := range s.store.All() {
			s.NotNil(r.PublishedAt)
		}
		s.Equal(3.0, testutil.ToFloat64(s.metrics.Published))
	})

	s.Run("failed publish records the attempt and leaves records pending", func() {
		s.SetupTest()
		s.appendRecords(1)
		s.publisher.err = errors.New("broker down")
		relay := s.newRelay()

		_, err := relay.RelayOnce(context.Background())
		s.Require().Error(err)
		recs := s.store.All()
		s.Nil(recs[0].PublishedAt)
		s.Equal(1, recs[0].Attempts)
		s.Equal("broker down", recs[0].LastError)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.PublishFailure))
	})

	s.Run("breaker pauses the relay until cooldown passes", func() {
		s.SetupTest()
		s.appendRecords(1)
		s.publisher.err = errors.New("broker down")
		relay := s.newRelay(outbox.WithBreaker(2, time.Minute))

		_, err := relay.RelayOnce(context.Background())
		s.Require().Error(err)
		_, err = relay.RelayOnce(context.Background())
		s.Require().Error(err)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.BreakerState))

		n, err := relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(0, n)
		s.Equal(2, s.publisher.calls)

		s.publisher.err = nil
		s.now = s.now.Add(2 * time.Minute)
		n, err = relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(0.0, testutil.ToFloat64(s.metrics.BreakerState))
	})
}

func (s *RelaySuite) TestRunStopsOnCancel() {
	s.appendRecords(1)
	relay := s.newRelay(outbox.WithInterval(5 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()

	s.Eventually(func() bool {
		s.publisher.mu.Lock()
		defer s.publisher.mu.Unlock()
		return len(s.publisher.published) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	s.ErrorIs(<-done, context.Canceled)
}

func (s *RelaySuite) TestLogPublisher() {
	p := outbox.NewLogPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec, err := outbox.NewRecord("audit", "1", "audit.started", struct{}{}, s.now)
	s.Require().NoError(err)
	s.NoError(p.Publish(context.Background(), []outbox.Record{rec}))
	s.NoError(p.Close())
}
