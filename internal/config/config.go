package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported relational drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MongoConfig keeps runtime settings for catsdb.
type MongoConfig struct {
	URI     string
	DBName  string
	Timeout time.Duration
}

// DBConfig keeps runtime settings for tasksdb.
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	Path     string
	LogLevel string
}

// LoadEnvFile loads variables from a .env file in the working directory.
// A missing file is not an error and variables already set in the process win.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadMongo reads document store settings from environment variables.
func LoadMongo() (MongoConfig, error) {
	cfg := MongoConfig{
		URI:     env("MONGO_URI"),
		DBName:  env("DB_NAME"),
		Timeout: parseSeconds(env("MONGO_TIMEOUT_SECONDS")),
	}

	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	if cfg.DBName == "" {
		return cfg, fmt.Errorf("DB_NAME is required")
	}
	return cfg, nil
}

// LoadDB reads relational store settings from environment variables.
func LoadDB() (DBConfig, error) {
	cfg := DBConfig{
		Driver:   strings.ToLower(env("DB_DRIVER")),
		Host:     env("DB_HOST"),
		Name:     env("DB_NAME"),
		User:     env("DB_USER"),
		Password: env("DB_PASSWORD"),
		SSLMode:  env("DB_SSLMODE"),
		Path:     env("DB_PATH"),
		LogLevel: strings.ToLower(env("DB_LOG_LEVEL")),
	}

	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	cfg.Port = 5432
	if raw := env("DB_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return cfg, fmt.Errorf("invalid DB_PORT %q", raw)
		}
		cfg.Port = port
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.Path == "" {
		cfg.Path = "tasks.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	switch cfg.Driver {
	case DriverPostgres:
		if cfg.Name == "" {
			return cfg, fmt.Errorf("DB_NAME is required")
		}
		if cfg.User == "" {
			return cfg, fmt.Errorf("DB_USER is required")
		}
	case DriverSQLite:
	default:
		return cfg, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw + "s")
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
