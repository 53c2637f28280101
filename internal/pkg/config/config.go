package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type (
	Tasks struct {
		StoreProbeInterval     time.Duration `envconfig:"BACKGROUND_STORE_PROBE_INTERVAL" default:"30s"`
		SessionCleanupInterval time.Duration `envconfig:"BACKGROUND_SESSION_CLEANUP_INTERVAL" default:"10m"`
		LimiterCleanupInterval time.Duration `envconfig:"BACKGROUND_LIMITER_CLEANUP_INTERVAL" default:"5m"`
		SystemMetricsInterval  time.Duration `envconfig:"BACKGROUND_SYSTEM_METRICS_INTERVAL" default:"15s"`
	}

	HTTPServer struct {
		Port             string        `envconfig:"PORT" default:"3000"`
		StaticDir        string        `envconfig:"STATIC_DIR" default:"./public"`
		RequestTimeout   time.Duration `envconfig:"MIDDLEWARE_REQUEST_TIMEOUT" default:"10s"` // middleware timeout
		RateLimiterQPS   int           `envconfig:"MIDDLEWARE_RATE_LIMIT_QPS" default:"100"`
		RateLimiterBurst int           `envconfig:"MIDDLEWARE_RATE_LIMIT_BURST" default:"200"`
		PprofEnabled     bool          `envconfig:"PPROF_ENABLED"`
		PprofPort        string        `envconfig:"PPROF_PORT"`
	}

	Database struct {
		Host           string `envconfig:"POSTGRES_HOST" required:"true"`
		Port           string `envconfig:"POSTGRES_PORT" default:"5432"`
		User           string `envconfig:"POSTGRES_USER" required:"true"`
		Password       string `envconfig:"POSTGRES_PASSWORD" required:"true"`
		DBName         string `envconfig:"POSTGRES_DB" required:"true"`
		SSLMode        string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
		MigrateOnStart bool   `envconfig:"POSTGRES_MIGRATE_ON_START" default:"true"`
	}

	// Redis пустой Addr означает хранение сессий в PostgreSQL.
	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB"`
	}

	Session struct {
		CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"session"`
		CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE"`
		TTL          time.Duration `envconfig:"SESSION_TTL" default:"12h"`
		ProtectAPI   bool          `envconfig:"AUTH_PROTECT_API"`
	}

	Login struct {
		RateLimitPerMinute int           `envconfig:"LOGIN_RATE_LIMIT_PER_MINUTE" default:"10"`
		RateLimitBurst     int           `envconfig:"LOGIN_RATE_LIMIT_BURST" default:"5"`
		LimiterIdleTTL     time.Duration `envconfig:"LOGIN_LIMITER_IDLE_TTL" default:"10m"`
	}

	Reports struct {
		Timezone string `envconfig:"REPORTS_TIMEZONE" default:"UTC"`
	}

	// Kafka без брокеров события заказов не публикуются.
	Kafka struct {
		Brokers          []string `envconfig:"KAFKA_BROKERS"`
		OrderEventsTopic string   `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"cookieshub.pedidos"`
		SaramaVersion    string   `envconfig:"KAFKA_SARAMA_VERSION" default:"3.6.0"`
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Session  Session
		Login    Login
		Reports  Reports
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase только секция базы, нужна админской утилите.
func LoadDatabase() (*Database, error) {
	var db Database
	if err := envconfig.Process("", &db); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	return &db, nil
}

func (r Reports) Location() (*time.Location, error) {
	return time.LoadLocation(r.Timezone)
}

// loadFromEnv секции разбираются по отдельности, чтобы имена переменных не получали префикс поля.
func loadFromEnv() (*Config, error) {
	cfg := &Config{}

	sections := []any{
		&cfg.Tasks,
		&cfg.Server,
		&cfg.Database,
		&cfg.Redis,
		&cfg.Session,
		&cfg.Login,
		&cfg.Reports,
		&cfg.Kafka,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}

	if cfg.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if cfg.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if cfg.Login.RateLimitPerMinute <= 0 {
		return errors.New("LOGIN_RATE_LIMIT_PER_MINUTE must be positive")
	}
	if cfg.Login.RateLimitBurst <= 0 {
		return errors.New("LOGIN_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Login.LimiterIdleTTL <= 0 {
		return errors.New("LOGIN_LIMITER_IDLE_TTL must be positive")
	}

	if cfg.Tasks.StoreProbeInterval <= 0 {
		return errors.New("BACKGROUND_STORE_PROBE_INTERVAL must be positive")
	}
	if cfg.Tasks.SessionCleanupInterval <= 0 {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL must be positive")
	}
	if cfg.Tasks.LimiterCleanupInterval <= 0 {
		return errors.New("BACKGROUND_LIMITER_CLEANUP_INTERVAL must be positive")
	}
	if cfg.Tasks.SystemMetricsInterval <= 0 {
		return errors.New("BACKGROUND_SYSTEM_METRICS_INTERVAL must be positive")
	}

	if _, err := cfg.Reports.Location(); err != nil {
		return fmt.Errorf("REPORTS_TIMEZONE=%q: %w", cfg.Reports.Timezone, err)
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.OrderEventsTopic == "" {
		return errors.New("KAFKA_ORDER_EVENTS_TOPIC is required when KAFKA_BROKERS is set")
	}

	return nil
}
