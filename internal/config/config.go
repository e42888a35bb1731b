package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ProjectID       string
	LogLevel        string
	LogFormat       string
	Port            string
	AuthEnabled     bool
	ShutdownTimeout time.Duration
	DB              DatabaseConfig
}

type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	PasswordSecret string // Secret Manager version name; wins over Password
	Name           string
	SSLMode        string
	Path           string
	Debug          bool
}

// New reads the environment. A .env file in the working directory is
// loaded first when present; variables already set are not overridden.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:       os.Getenv("PROJECTID"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		LogFormat:       os.Getenv("LOGFORMAT"),
		Port:            getenv("PORT", "8080"),
		AuthEnabled:     getbool("AUTH_ENABLED", false),
		ShutdownTimeout: getduration("SHUTDOWN_TIMEOUT", 15*time.Second),
		DB: DatabaseConfig{
			Driver:         strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
			Host:           getenv("DB_HOST", "localhost"),
			Port:           getenv("DB_PORT", "5432"),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			PasswordSecret: os.Getenv("DB_PASSWORD_SECRET"),
			Name:           os.Getenv("DB_NAME"),
			SSLMode:        getenv("DB_SSLMODE", "disable"),
			Path:           getenv("DB_PATH", "gatabank.db"),
			Debug:          getbool("DB_DEBUG", false),
		},
	}
}

// DSN renders the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path + "?_foreign_keys=on"
	}
	parts := []string{
		pgParam("host", c.Host),
		pgParam("port", c.Port),
		pgParam("user", c.User),
		pgParam("password", c.Password),
		pgParam("dbname", c.Name),
		pgParam("sslmode", c.SSLMode),
	}
	return strings.Join(parts, " ")
}

// pgParam quotes a keyword/value pair the way libpq expects.
func pgParam(key, value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return key + "=" + value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return key + "='" + escaped + "'"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getduration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
