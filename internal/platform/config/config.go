package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all process configuration so main stays lean.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Checkin  CheckinConfig
	Audit    AuditConfig
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr string
}

// PostgresConfig configures the ledger and audit database. An empty URL keeps
// the process on the in-memory stores (dev/demo mode).
type PostgresConfig struct {
	URL string
}

// RedisConfig configures the directory read-through cache.
// An empty URL disables Redis entirely.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig configures the optional failed-attempt mirror.
// Empty brokers disable the mirror.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AuthConfig configures verification of operator tokens. Tokens are issued by
// the external staff auth service; we only verify them.
type AuthConfig struct {
	JWTSigningKey string
	Issuer        string
	Audience      string
}

// CheckinConfig holds the check-in policy knobs. The session window boundaries
// are deliberately explicit configuration, never inferred.
type CheckinConfig struct {
	// EarlyCheckinLead is how long before a session's start a scan is accepted.
	EarlyCheckinLead time.Duration
	// LateGracePeriod is how long after a session's end a scan is still accepted.
	LateGracePeriod time.Duration
	// MaxCodeLength bounds candidate codes at normalization.
	MaxCodeLength int
}

// AuditConfig sizes the failed-attempt auditor.
type AuditConfig struct {
	BufferSize int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Addr: envString("GATECHECK_ADDR", ":8080"),
		},
		Postgres: PostgresConfig{
			URL: os.Getenv("GATECHECK_POSTGRES_URL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("GATECHECK_REDIS_URL"),
			PoolSize:     envInt("GATECHECK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("GATECHECK_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("GATECHECK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("GATECHECK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("GATECHECK_REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     envDuration("GATECHECK_DIRECTORY_CACHE_TTL", 30*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(os.Getenv("GATECHECK_KAFKA_BROKERS")),
			Topic:   envString("GATECHECK_KAFKA_FAILED_ATTEMPTS_TOPIC", "checkin.failed-attempts"),
		},
		Auth: AuthConfig{
			JWTSigningKey: envString("GATECHECK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			Issuer:        envString("GATECHECK_JWT_ISSUER", "staff-auth"),
			Audience:      envString("GATECHECK_JWT_AUDIENCE", "gatecheck"),
		},
		Checkin: CheckinConfig{
			EarlyCheckinLead: envDuration("GATECHECK_EARLY_CHECKIN_LEAD", time.Hour),
			LateGracePeriod:  envDuration("GATECHECK_LATE_GRACE_PERIOD", 15*time.Minute),
			MaxCodeLength:    envInt("GATECHECK_MAX_CODE_LENGTH", 64),
		},
		Audit: AuditConfig{
			BufferSize: envInt("GATECHECK_AUDIT_BUFFER_SIZE", 1024),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
