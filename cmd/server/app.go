package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hsse/internal/audit/handler"
	auditmetrics "hsse/internal/audit/metrics"
	"hsse/internal/audit/overdue"
	"hsse/internal/audit/service"
	"hsse/internal/audit/store"
	"hsse/internal/audit/store/lock"
	"hsse/internal/audit/template"
	"hsse/internal/platform/config"
	"hsse/internal/platform/metrics"
	"hsse/internal/platform/middleware"
	"hsse/internal/platform/ratelimit"
	"hsse/internal/platform/redis"
	"hsse/pkg/platform/httputil"
	"hsse/pkg/platform/middleware/metadata"
	"hsse/pkg/platform/middleware/requesttime"
	"hsse/pkg/platform/outbox"
	txcontext "hsse/pkg/platform/tx"
)

type application struct {
	router  http.Handler
	relay   *outbox.Relay
	sweeper *overdue.Sweeper
	closers []func() error
	logger  *slog.Logger
}

// build selects Postgres, Redis and Kafka backends when configured and falls
// back to in-process implementations otherwise.
func build(ctx context.Context, cfg config.Config, log *slog.Logger) (*application, error) {
	app := &application{logger: log}
	checks := map[string]func(context.Context) error{}

	var (
		auditStore service.Store
		outboxes   interface {
			outbox.Store
			outbox.Appender
		}
		runner txcontext.Runner = txcontext.NoopRunner{}
	)
	if cfg.Postgres.URL != "" {
		db, err := sql.Open("pgx", cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		app.closers = append(app.closers, db.Close)

		pgStore := store.NewPostgres(db)
		if err := pgStore.Init(ctx); err != nil {
			app.close()
			return nil, fmt.Errorf("init audit schema: %w", err)
		}
		pgOutbox := outbox.NewPostgresStore(db)
		if err := pgOutbox.Init(ctx); err != nil {
			app.close()
			return nil, fmt.Errorf("init outbox schema: %w", err)
		}
		auditStore, outboxes = pgStore, pgOutbox
		runner = txcontext.NewSQLRunner(db, cfg.Postgres.TxTimeout)
		checks["postgres"] = db.PingContext
		log.Info("using postgres storage")
	} else {
		auditStore, outboxes = store.NewInMemoryStore(), outbox.NewMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	var (
		locker  service.Locker  = lock.NewLocal()
		limiter ratelimit.Store = ratelimit.NewInMemoryStore()
	)
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		app.close()
		return nil, err
	}
	if redisClient != nil {
		app.closers = append(app.closers, redisClient.Close)
		locker = lock.NewRedis(redisClient.Client, lock.WithTTL(cfg.Redis.LockTTL), lock.WithWait(cfg.Redis.LockWait))
		limiter = ratelimit.NewRedisStore(redisClient.Client)
		checks["redis"] = redisClient.Health
		log.Info("using redis for audit locks and rate limits")
	}

	var publisher outbox.Publisher = outbox.NewLogPublisher(log)
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := outbox.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			app.close()
			return nil, err
		}
		if err := kp.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor); err != nil {
			_ = kp.Close()
			app.close()
			return nil, err
		}
		publisher = kp
		log.Info("publishing audit events to kafka", "topic", cfg.Kafka.Topic)
	}
	app.closers = append(app.closers, publisher.Close)

	templates := template.NewRegistry()
	if cfg.TemplateDir != "" {
		templates, err = template.LoadDir(cfg.TemplateDir)
		if err != nil {
			app.close()
			return nil, err
		}
		log.Info("loaded checklist templates", "templates", templates.Names())
	}

	auditMetrics := auditmetrics.New()
	svc := service.New(auditStore,
		service.WithLogger(log),
		service.WithMetrics(auditMetrics),
		service.WithTxRunner(runner),
		service.WithLocker(locker),
		service.WithOutbox(outboxes),
		service.WithTemplates(templates),
	)

	app.relay = outbox.NewRelay(outboxes, publisher,
		outbox.WithLogger(log),
		outbox.WithMetrics(outbox.NewMetrics()),
		outbox.WithInterval(cfg.Outbox.PollInterval),
		outbox.WithBatchSize(cfg.Outbox.BatchSize),
		outbox.WithTxRunner(runner),
		outbox.WithBreaker(cfg.Outbox.BreakerThreshold, cfg.Outbox.BreakerCooldown),
	)
	app.sweeper = overdue.New(svc,
		overdue.WithLogger(log),
		overdue.WithMetrics(auditMetrics),
		overdue.WithInterval(cfg.Overdue.Interval),
		overdue.WithBatchSize(cfg.Overdue.BatchSize),
		overdue.WithConcurrency(cfg.Overdue.Concurrency),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(log, metrics.New()))
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(requesttime.Middleware)
	r.Use(middleware.Actor(log))
	r.Use(ratelimit.Writes(limiter, cfg.Limits.Writes, cfg.Limits.Window, log))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", healthz(checks))
	handler.New(svc, log).Register(r)
	app.router = r

	return app, nil
}

func healthz(checks map[string]func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		code := http.StatusOK
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}
		httputil.WriteJSON(w, code, status)
	}
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close resource", "error", err)
		}
	}
	a.closers = nil
}
