package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`             // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`               // Telegram API token loaded from environment
	VerbsJSONPath    string  `mapstructure:"verbs_json_path"` // path to JSON file with the conjugation table
	DB               DB      `mapstructure:"database"`        // database configuration section
	Quiz             Quiz    `mapstructure:"quiz"`            // quiz session configuration section
	Metrics          Metrics `mapstructure:"metrics"`         // metrics endpoint configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Quiz contains quiz session parameters.
type Quiz struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`    // idle time after which an active quiz is abandoned
	SweepInterval time.Duration `mapstructure:"sweep_interval"` // how often idle quizzes are looked for
}

// Metrics contains the Prometheus endpoint settings.
type Metrics struct {
	Addr string `mapstructure:"addr"` // listen address, empty disables the endpoint
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// ValidateBot checks the secrets the Telegram bot cannot run without.
func (c *Config) ValidateBot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	if c.DB.URL == "" {
		return fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}
	return nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom is Load with an explicit directory to look for config.yaml in.
func LoadFrom(dir string) (*Config, error) {
	// Pick up a local .env file if one exists.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("verbs_json_path", "assets/data/verbs.json")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("quiz.session_ttl", "2h")
	v.SetDefault("quiz.sweep_interval", "10m")
	v.SetDefault("metrics.addr", "")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("metrics.addr", "METRICS_ADDR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
