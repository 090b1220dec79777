package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
	Business  BusinessConfig  `mapstructure:",squash"`
	Health    HealthConfig    `mapstructure:",squash"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"SERVER_PORT"`
	Host         string        `mapstructure:"SERVER_HOST"`
	Env          string        `mapstructure:"ENV"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
	AutoMigrate     bool          `mapstructure:"DATABASE_AUTO_MIGRATE"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"REDIS_ENABLED"`
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	PurgeSchedule  string `mapstructure:"PURGE_JOB_SCHEDULE"`
	StatusSchedule string `mapstructure:"STATUS_JOB_SCHEDULE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type BusinessConfig struct {
	CurrencySymbol                 string        `mapstructure:"CURRENCY_SYMBOL"`
	Timezone                       string        `mapstructure:"TIMEZONE"`
	ExceptionProposalRetentionDays int           `mapstructure:"EXCEPTION_PROPOSAL_RETENTION_DAYS"`
	StatsCacheTTL                  time.Duration `mapstructure:"STATS_CACHE_TTL"`
}

type HealthConfig struct {
	Timeout time.Duration `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_PORT":                       "8080",
	"SERVER_HOST":                       "0.0.0.0",
	"ENV":                               "development",
	"SERVER_READ_TIMEOUT":               "15s",
	"SERVER_WRITE_TIMEOUT":              "30s",
	"DATABASE_URL":                      "",
	"DATABASE_MAX_OPEN_CONNS":           25,
	"DATABASE_MAX_IDLE_CONNS":           5,
	"DATABASE_CONN_MAX_LIFETIME":        "5m",
	"DATABASE_AUTO_MIGRATE":             true,
	"REDIS_ENABLED":                     true,
	"REDIS_HOST":                        "localhost",
	"REDIS_PORT":                        "6379",
	"REDIS_PASSWORD":                    "",
	"REDIS_DB":                          0,
	"PURGE_JOB_SCHEDULE":                "0 0 2 * * *",
	"STATUS_JOB_SCHEDULE":               "0 0 8 * * MON-FRI",
	"LOG_LEVEL":                         "info",
	"LOG_FORMAT":                        "json",
	"CURRENCY_SYMBOL":                   "R$",
	"TIMEZONE":                          "America/Sao_Paulo",
	"EXCEPTION_PROPOSAL_RETENTION_DAYS": 31,
	"STATS_CACHE_TTL":                   "5m",
	"HEALTH_CHECK_TIMEOUT":              "5s",
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Read from environment variables
	v.AutomaticEnv()

	// Try to read from .env file (optional)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// cronParser accepts the six-field specs the scheduler runs with.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.ExceptionProposalRetentionDays <= 0 {
		return fmt.Errorf("EXCEPTION_PROPOSAL_RETENTION_DAYS must be greater than 0")
	}

	if strings.TrimSpace(c.Business.CurrencySymbol) == "" {
		return fmt.Errorf("CURRENCY_SYMBOL is required")
	}

	if _, err := time.LoadLocation(c.Business.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE must be a valid IANA zone: %w", err)
	}

	if c.Business.StatsCacheTTL <= 0 {
		return fmt.Errorf("STATS_CACHE_TTL must be greater than 0")
	}

	if c.Health.Timeout <= 0 {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be greater than 0")
	}

	// Validate job schedules
	if _, err := cronParser.Parse(c.Scheduler.PurgeSchedule); err != nil {
		return fmt.Errorf("PURGE_JOB_SCHEDULE must be a valid cron spec: %w", err)
	}
	if _, err := cronParser.Parse(c.Scheduler.StatusSchedule); err != nil {
		return fmt.Errorf("STATUS_JOB_SCHEDULE must be a valid cron spec: %w", err)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// Location returns the zone used to decide what "today" is
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RedisAddr returns host:port of the Redis server
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
