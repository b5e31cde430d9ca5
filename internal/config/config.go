package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Translate  TranslateConfig  `yaml:"translate"`
	Reminder   ReminderConfig   `yaml:"reminder"`
	Review     ReviewConfig     `yaml:"review"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SQLiteConfig locates the local preferences database.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./data/settings.db"`
}

// DictionaryConfig holds dictionary lookup settings.
type DictionaryConfig struct {
	BaseURL           string        `yaml:"base_url"            env:"DICTIONARY_BASE_URL"            env-default:"https://api.dictionaryapi.dev"`
	Timeout           time.Duration `yaml:"timeout"             env:"DICTIONARY_TIMEOUT"             env-default:"10s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"DICTIONARY_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"DICTIONARY_BURST"               env-default:"5"`
}

// TranslateConfig holds LibreTranslate settings. When disabled, words are
// enriched without translations.
type TranslateConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"TRANSLATE_ENABLED"             env-default:"false"`
	BaseURL           string        `yaml:"base_url"            env:"TRANSLATE_BASE_URL"`
	APIKey            string        `yaml:"api_key"             env:"TRANSLATE_API_KEY"`
	Timeout           time.Duration `yaml:"timeout"             env:"TRANSLATE_TIMEOUT"             env-default:"10s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"TRANSLATE_REQUESTS_PER_SECOND" env-default:"2"`
	Burst             int           `yaml:"burst"               env:"TRANSLATE_BURST"               env-default:"2"`
}

// ReminderConfig holds daily reminder settings.
type ReminderConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"REMINDER_ENABLED"  env-default:"true"`
	Timezone string `yaml:"timezone" env:"REMINDER_TIMEZONE" env-default:"Local"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ReviewConfig holds review orchestrator settings.
type ReviewConfig struct {
	EnrichConcurrency int `yaml:"enrich_concurrency" env:"REVIEW_ENRICH_CONCURRENCY" env-default:"4"`
	EnrichBatchSize   int `yaml:"enrich_batch_size"  env:"REVIEW_ENRICH_BATCH_SIZE"  env-default:"100"`
}

// RateLimitConfig holds per-client HTTP rate limits for /api.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}
