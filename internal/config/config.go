package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	DB               DB
	Geo              Geo
	RateLimit        RateLimit
	Kafka            Kafka
	Redis            Redis
	Pprof            Pprof
	Log              Log
	Tenant           Tenant
}

// DB holds postgres connection settings.
type DB struct {
	Host        string
	Port        string
	User        string
	Pass        string
	Name        string
	AutoMigrate bool
}

// DSN returns a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Geo holds geocoding/routing provider settings.
type Geo struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit holds per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka holds broker settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers        []string
	OrderEvents    string
	DriverLocation string
	Group          string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Redis holds tenant cache settings. Empty Addr disables the cache.
type Redis struct {
	Addr      string
	Password  string
	DB        int
	TenantTTL time.Duration
}

// Pprof holds profiling server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Log selects the logging backend.
type Log struct {
	Format string
	Level  string
}

// Tenant holds tenant resolution settings.
type Tenant struct {
	Header string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.BoolVar(&cfg.DB.AutoMigrate, "migrate", cfg.DB.AutoMigrate, "apply the embedded schema on startup")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug|info|warn|error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log backend: slog|zap")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:             defaultPort,
		OperationTimeout: defaultOperationTimeout,
		DB:               DefaultDB(),
		Geo:              DefaultGeo(),
		RateLimit:        DefaultRateLimit(),
		Kafka:            DefaultKafka(),
		Redis:            DefaultRedis(),
		Log:              DefaultLog(),
		Tenant:           Tenant{Header: defaultTenantHeader},
	}

	var errs []error
	envInt("PORT", &cfg.Port, &errs)
	envDuration("OPERATION_TIMEOUT", &cfg.OperationTimeout, &errs)

	envString("POSTGRES_HOST", &cfg.DB.Host)
	envString("POSTGRES_PORT", &cfg.DB.Port)
	envString("POSTGRES_USER", &cfg.DB.User)
	envString("POSTGRES_PASSWORD", &cfg.DB.Pass)
	envString("POSTGRES_DB", &cfg.DB.Name)
	envBool("DB_AUTO_MIGRATE", &cfg.DB.AutoMigrate, &errs)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		errs = append(errs, fmt.Errorf("POSTGRES_PORT: %w", err))
	}

	envString("GEO_BASE_URL", &cfg.Geo.BaseURL)
	envString("GEO_API_KEY", &cfg.Geo.APIKey)
	envDuration("GEO_TIMEOUT", &cfg.Geo.Timeout, &errs)
	envInt("GEO_MAX_ATTEMPTS", &cfg.Geo.MaxAttempts, &errs)
	envDuration("GEO_BASE_DELAY", &cfg.Geo.BaseDelay, &errs)
	envDuration("GEO_MAX_DELAY", &cfg.Geo.MaxDelay, &errs)

	envBool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled, &errs)
	envFloat("RATE_LIMIT_RATE", &cfg.RateLimit.Rate, &errs)
	envInt("RATE_LIMIT_BURST", &cfg.RateLimit.Burst, &errs)
	envDuration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL, &errs)
	envInt("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets, &errs)

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	envString("KAFKA_ORDER_EVENTS_TOPIC", &cfg.Kafka.OrderEvents)
	envString("KAFKA_DRIVER_LOCATION_TOPIC", &cfg.Kafka.DriverLocation)
	envString("KAFKA_GROUP", &cfg.Kafka.Group)

	envString("REDIS_ADDR", &cfg.Redis.Addr)
	envString("REDIS_PASSWORD", &cfg.Redis.Password)
	envInt("REDIS_DB", &cfg.Redis.DB, &errs)
	envDuration("REDIS_TENANT_TTL", &cfg.Redis.TenantTTL, &errs)

	envString("PPROF_ADDR", &cfg.Pprof.Addr)
	envString("PPROF_USER", &cfg.Pprof.User)
	envString("PPROF_PASS", &cfg.Pprof.Pass)

	envString("LOG_FORMAT", &cfg.Log.Format)
	envString("LOG_LEVEL", &cfg.Log.Level)

	envString("TENANT_HEADER", &cfg.Tenant.Header)

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port: %d", c.Port)
	case c.OperationTimeout <= 0:
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	case c.Geo.Timeout <= 0:
		return fmt.Errorf("invalid geo timeout: %s", c.Geo.Timeout)
	case c.Geo.MaxAttempts < 1:
		return fmt.Errorf("invalid geo max attempts: %d", c.Geo.MaxAttempts)
	case c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0):
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	case c.Log.Format != "slog" && c.Log.Format != "zap":
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	case strings.TrimSpace(c.Tenant.Header) == "":
		return fmt.Errorf("tenant header must not be empty")
	}
	return nil
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int, errs *[]error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func envFloat(key string, dst *float64, errs *[]error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}

func envBool(key string, dst *bool, errs *[]error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func envDuration(key string, dst *time.Duration, errs *[]error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
