package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort         string
	StorageDriver    string
	OperatorWorkers  int
	DashboardTimeout time.Duration
	LogLevel         string

	// AMQPURL enables ledger change events when set.
	AMQPURL      string
	AMQPExchange string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("POSTGRES_ADDRESS", "localhost")
	v.SetDefault("POSTGRES_PORT", "5433")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_USERNAME", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "testpassword")
	v.SetDefault("HTTP_PORT", "9446")
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("OPERATOR_WORKERS", 2)
	v.SetDefault("DASHBOARD_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "ledger.events")
	v.AutomaticEnv()

	env := Config{
		PostgresAddress:  v.GetString("POSTGRES_ADDRESS"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresUsername: v.GetString("POSTGRES_USERNAME"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		HTTPPort:         v.GetString("HTTP_PORT"),
		StorageDriver:    v.GetString("STORAGE_DRIVER"),
		OperatorWorkers:  v.GetInt("OPERATOR_WORKERS"),
		DashboardTimeout: v.GetDuration("DASHBOARD_TIMEOUT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		AMQPURL:          v.GetString("AMQP_URL"),
		AMQPExchange:     v.GetString("AMQP_EXCHANGE"),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.OperatorWorkers < 1 {
		return fmt.Errorf("OPERATOR_WORKERS must be positive, got %d", c.OperatorWorkers)
	}
	if c.DashboardTimeout <= 0 {
		return fmt.Errorf("DASHBOARD_TIMEOUT must be positive, got %s", c.DashboardTimeout)
	}
	return nil
}

// PostgresURL is the lib/pq connection string for the configured database.
// Credentials and database name are escaped.
func (c *Config) PostgresURL() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
