package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Application environments.
const (
	EnvLocal  = "local"
	EnvDocker = "docker"
)

// Config holds the service configuration.
type Config struct {
	AppEnv          string
	AppPort         string
	StoreDriver     string
	MongoURL        string
	MongoDB         string
	DatabaseDSN     string
	RabbitMQURL     string
	RabbitMQQueue   string
	ImagesDir       string
	LogLevel        string
	LogFormat       string
	CORSOrigins     string
	ConnectTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from envFiles (".env" when none is given),
// then the environment, over the built-in defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		AppEnv:          strings.ToLower(v.GetString("APP_ENV")),
		AppPort:         v.GetString("APP_PORT"),
		StoreDriver:     strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURL:        v.GetString("MONGO_URL"),
		MongoDB:         v.GetString("MONGO_DB"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:   v.GetString("RABBITMQ_QUEUE"),
		ImagesDir:       v.GetString("IMAGES_DIR"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		CORSOrigins:     v.GetString("CORS_ALLOW_ORIGINS"),
		ConnectTimeout:  v.GetDuration("CONNECT_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.AppEnv == EnvDocker {
			cfg.LogFormat = "json"
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("APP_PORT", ":8001")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "akb_store")
	v.SetDefault("DATABASE_DSN", "akb_store.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "cart_events")
	v.SetDefault("IMAGES_DIR", "./images")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("CONNECT_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.AppEnv != EnvLocal && c.AppEnv != EnvDocker {
		return fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", c.AppEnv)
	}
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURL == "" || c.MongoDB == "" {
			return fmt.Errorf("MONGO_URL and MONGO_DB are required for the mongo driver")
		}
	case DriverPostgres, DriverSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s driver", c.StoreDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s", c.StoreDriver)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug/info/warn/error)", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be json or console)", c.LogFormat)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("CONNECT_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// EventsEnabled reports whether cart events should be published.
func (c Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// RedactedMongoURL hides the password part of MongoURL for logging.
func (c Config) RedactedMongoURL() string {
	scheme, rest, ok := strings.Cut(c.MongoURL, "://")
	if !ok {
		return c.MongoURL
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return c.MongoURL
	}
	user, _, hasPassword := strings.Cut(creds, ":")
	if !hasPassword {
		return c.MongoURL
	}
	return scheme + "://" + user + ":***@" + host
}
