package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
	defaultTenantHeader     = "X-Tenant"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "dispatch",
}

var defaultGeo = Geo{
	BaseURL:     "https://maps.googleapis.com/maps/api",
	Timeout:     2 * time.Second,
	MaxAttempts: 3,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultKafka = Kafka{
	OrderEvents:    "order-events",
	DriverLocation: "driver-locations",
	Group:          "dispatch-worker",
}

var defaultRedis = Redis{
	TenantTTL: time.Minute,
}

var defaultLog = Log{
	Format: "slog",
	Level:  "info",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultOperationTimeout returns the default per-operation store timeout.
func DefaultOperationTimeout() time.Duration {
	return defaultOperationTimeout
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultGeo returns the default geo provider settings.
func DefaultGeo() Geo {
	return defaultGeo
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultKafka returns the default kafka topics and group.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRedis returns the default redis settings.
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultLog returns the default log settings.
func DefaultLog() Log {
	return defaultLog
}

// DefaultTenantHeader returns the default tenant selector header.
func DefaultTenantHeader() string {
	return defaultTenantHeader
}
