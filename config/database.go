package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"coin"`
	Password string `env:"PASSWORD" envDefault:"coin"`
	Name     string `env:"NAME"     envDefault:"coin"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// RedisConfig contains Redis configuration for the metrics cache.
// Redis is optional: with Enabled=false the portal serves aggregates
// straight from PostgreSQL.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig contains cache TTL tuning.
type CacheConfig struct {
	// MetricsTTL is how long aggregated dashboard metrics may be served
	// from cache before being recomputed.
	MetricsTTL time.Duration `env:"CACHE_METRICS_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.MetricsTTL <= 0 {
		c.MetricsTTL = 5 * time.Minute
	}
}
