package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	pstrings "hsse/pkg/platform/strings"
)

// Config is the process configuration. Empty connection settings select the
// in-process fallbacks so the server runs with no infrastructure at all.
type Config struct {
	Server   Server
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Outbox   OutboxConfig
	Overdue  OverdueConfig
	Limits   RateLimitConfig

	LogFormat   string
	TemplateDir string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	TxTimeout    time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LockTTL      time.Duration
	LockWait     time.Duration
}

type KafkaConfig struct {
	Brokers           []string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
}

type OutboxConfig struct {
	PollInterval     time.Duration
	BatchSize        int
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

type OverdueConfig struct {
	Interval    time.Duration
	BatchSize   int
	Concurrency int
}

// RateLimitConfig caps write requests per actor, or per client IP for
// anonymous callers.
type RateLimitConfig struct {
	Writes int
	Window time.Duration
}

// Load reads a .env file when present, then builds the config from the
// environment. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	p := &parser{}
	cfg := Config{
		Server: Server{
			Addr:            p.str("HSSE_ADDR", ":8080"),
			RequestTimeout:  p.duration("HSSE_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: p.duration("HSSE_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			URL:          p.str("DATABASE_URL", ""),
			MaxOpenConns: p.int("DATABASE_MAX_OPEN_CONNS", 10),
			TxTimeout:    p.duration("DATABASE_TX_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:          p.str("REDIS_URL", ""),
			PoolSize:     p.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			LockTTL:      p.duration("AUDIT_LOCK_TTL", 10*time.Second),
			LockWait:     p.duration("AUDIT_LOCK_WAIT", 2*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:           p.list("KAFKA_BROKERS"),
			Topic:             p.str("KAFKA_TOPIC", "hsse.audit.events"),
			Partitions:        int32(p.int("KAFKA_TOPIC_PARTITIONS", 3)),
			ReplicationFactor: int16(p.int("KAFKA_TOPIC_REPLICATION", 1)),
		},
		Outbox: OutboxConfig{
			PollInterval:     p.duration("OUTBOX_POLL_INTERVAL", time.Second),
			BatchSize:        p.int("OUTBOX_BATCH_SIZE", 100),
			BreakerThreshold: p.int("OUTBOX_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  p.duration("OUTBOX_BREAKER_COOLDOWN", 30*time.Second),
		},
		Overdue: OverdueConfig{
			Interval:    p.duration("OVERDUE_SWEEP_INTERVAL", 5*time.Minute),
			BatchSize:   p.int("OVERDUE_SWEEP_BATCH", 200),
			Concurrency: p.int("OVERDUE_SWEEP_CONCURRENCY", 4),
		},
		Limits: RateLimitConfig{
			Writes: p.int("RATE_LIMIT_WRITES", 120),
			Window: p.duration("RATE_LIMIT_WINDOW", time.Minute),
		},
		LogFormat:   p.str("LOG_FORMAT", "json"),
		TemplateDir: p.str("AUDIT_TEMPLATE_DIR", ""),
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// parser collects the first malformed variable instead of failing per call.
type parser struct {
	err error
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) int(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		p.fail(fmt.Errorf("%s must be a positive integer, got %q", key, raw))
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		p.fail(fmt.Errorf("%s must be a positive duration, got %q", key, raw))
		return def
	}
	return v
}

func (p *parser) list(key string) []string {
	return pstrings.SplitList(os.Getenv(key), ",")
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
