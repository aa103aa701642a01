package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":9090"
	defaultCacheDB       = 0
	defaultBloomBitSize  = 10000000
	defaultBloomInterval = 5 * time.Minute
	defaultDBMaxRetry    = 10
	defaultEventFlush    = time.Second
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Bloom    BloomConfig
	Events   EventsConfig
	Log      LogConfig

	// RootTotal is "count" for a true root comment count, anything else keeps the page size
	RootTotal string
}

type ServerConfig struct {
	Address        string
	ContextTimeout time.Duration
}

type DatabaseConfig struct {
	Host              string
	Port              string
	User              string
	Password          string
	Name              string
	MaxRetry          int
	MigrationsEnabled bool
}

type CacheConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret []byte
}

type BloomConfig struct {
	Enabled         bool
	BitSize         uint64
	RefreshInterval time.Duration
}

type EventsConfig struct {
	NATSURL       string
	SubjectPrefix string
	FlushInterval time.Duration
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("SERVER_ADDRESS", defaultAddress),
			ContextTimeout: time.Duration(getIntEnv("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:              getEnv("DATABASE_HOST", "localhost"),
			Port:              getEnv("DATABASE_PORT", "3306"),
			User:              getEnv("DATABASE_USER", "root"),
			Password:          os.Getenv("DATABASE_PASS"),
			Name:              os.Getenv("DATABASE_NAME"),
			MaxRetry:          getIntEnv("DATABASE_MAX_RETRY", defaultDBMaxRetry),
			MigrationsEnabled: getBoolEnv("MIGRATIONS_ENABLED", true),
		},
		Cache: CacheConfig{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnv("CACHE_PORT", "6379"),
			Password: os.Getenv("CACHE_PASS"),
			DB:       getIntEnv("CACHE_DB", defaultCacheDB),
		},
		Auth: AuthConfig{
			JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		},
		Bloom: BloomConfig{
			Enabled:         getBoolEnv("BLOOM_ENABLED", true),
			BitSize:         getUint64Env("BLOOM_FILTER_SIZE", defaultBloomBitSize),
			RefreshInterval: getDurationEnv("BLOOM_REFRESH_INTERVAL", defaultBloomInterval),
		},
		Events: EventsConfig{
			NATSURL:       os.Getenv("NATS_URL"),
			SubjectPrefix: os.Getenv("NATS_SUBJECT_PREFIX"),
			FlushInterval: getDurationEnv("EVENTS_FLUSH_INTERVAL", defaultEventFlush),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		RootTotal: os.Getenv("COMMENT_ROOT_TOTAL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}
	if len(c.Auth.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Bloom.BitSize == 0 {
		return fmt.Errorf("BLOOM_FILTER_SIZE must be positive")
	}
	return nil
}

// DSN returns the MySQL connection string.
// ClientFoundRows makes UPDATE report matched rows, so rewriting the same content
// within one second is not mistaken for a vanished comment.
func (c *DatabaseConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.ClientFoundRows = true
	return mc.FormatDSN()
}

func (c *CacheConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// SetupLogger configures the global logrus logger.
func (c *LogConfig) SetupLogger() {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using info", c.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if c.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getUint64Env(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		logrus.Warnf("failed to parse %s, using default %s", key, defaultValue)
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		logrus.Warnf("failed to parse %s, using default %t", key, defaultValue)
	}
	return defaultValue
}
