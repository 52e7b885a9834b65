package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogMaxBackups int    `toml:"log_max_backups"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"-"`
	RunMigrations    bool   `toml:"run_migrations"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// mesocycle
	SorenessPromptTimeout Duration `toml:"soreness_prompt_timeout"`
	SessionIdleTimeout    Duration `toml:"session_idle_timeout"`
	PlanCacheSizeMB       int      `toml:"plan_cache_size_mb"`

	HoneycombEnabled bool   `toml:"-"`
	SentryDSN        string `toml:"-"`
	MCPSecret        string `toml:"-"`
}

// Duration lets toml values like "60s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the config of the given environment from the toml file, fills in the defaults,
// and takes the secrets from the environment (a local .env file is loaded first, when present).
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("failed to load .env file: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	cfg.readEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.SorenessPromptTimeout.Duration <= 0 {
		c.SorenessPromptTimeout.Duration = time.Minute
	}
	if c.SessionIdleTimeout.Duration <= 0 {
		c.SessionIdleTimeout.Duration = 3 * time.Hour
	}
	if c.PlanCacheSizeMB <= 0 {
		c.PlanCacheSizeMB = 8
	}
}

func (c *Config) readEnv() {
	c.PostgresPassword = os.Getenv("MESOCYCLE_DB_PASSWORD")
	c.RedisPassword = os.Getenv("MESOCYCLE_REDIS_PASS")
	c.SentryDSN = os.Getenv("SENTRY_DSN")
	c.MCPSecret = os.Getenv("MESOCYCLE_MCP_SECRET")
	c.HoneycombEnabled = os.Getenv("HONEYCOMB_ENABLED") == "true"
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return errors.New("postgres host, port and db name must be set")
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		return errors.New("redis host and port must be set")
	}
	if c.SentryEnabled && c.SentryDSN == "" {
		return errors.New("sentry enabled, but SENTRY_DSN not set")
	}
	return nil
}
