// Package config centralizes environment-based configuration for the
// intake server and the export job. All settings have working local
// defaults so a development instance runs with no configuration at all.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	AllowedOrigin string
}

// DatabaseConfig holds the row-store connection settings. The default
// backend is a local SQLite file; set DB_DRIVER=postgres to run against
// PostgreSQL with the usual host/port/user settings.
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MailConfig holds the SMTP transport settings. The defaults match a
// local Postfix relay on port 25 without authentication.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Operator string
}

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          GetEnvOrDefault("PORT", "8521"),
			ReadTimeout:   15 * time.Second,
			WriteTimeout:  15 * time.Second,
			IdleTimeout:   60 * time.Second,
			AllowedOrigin: GetEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Driver:          GetEnvOrDefault("DB_DRIVER", "sqlite"),
			Path:            GetEnvOrDefault("DB_PATH", "membership.db"),
			Host:            GetEnvOrDefault("DB_HOST", "localhost"),
			Port:            GetEnvOrDefault("DB_PORT", "5432"),
			Username:        GetEnvOrDefault("DB_USER", "postgres"),
			Password:        GetEnvOrDefault("DB_PASSWORD", "password"),
			Database:        GetEnvOrDefault("DB_NAME", "samenwerkt"),
			SSLMode:         GetEnvOrDefault("DB_SSLMODE", "require"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
		Mail: MailConfig{
			Host:     GetEnvOrDefault("SMTP_HOST", "localhost"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 25),
			Username: GetEnvOrDefault("SMTP_USER", ""),
			Password: GetEnvOrDefault("SMTP_PASSWORD", ""),
			From:     GetEnvOrDefault("MAIL_FROM", "info@samenwerktwbd.nl"),
			Operator: GetEnvOrDefault("MAIL_OPERATOR", "info@samenwerktwbd.nl"),
		},
	}
}

// BackendName returns the storage backend name reported by the health
// endpoint.
func (d *DatabaseConfig) BackendName() string {
	if d.Driver == "postgres" {
		return "PostgreSQL"
	}
	return "SQLite"
}

// TransportDescription returns the mail transport description reported
// by the health endpoint.
func (m *MailConfig) TransportDescription() string {
	return "SMTP (" + m.Host + ":" + strconv.Itoa(m.Port) + ")"
}

// GetEnvOrDefault returns the environment variable value or a default
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable parsed as int or a default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Ignoring non-numeric environment variable", "key", key, "value", value)
	}
	return defaultValue
}

// SetupLogging configures the default slog logger based on LOG_FORMAT
// and LOG_LEVEL.
func SetupLogging(format, level string) {
	var handler slog.Handler

	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: getLogLevel(level),
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: getLogLevel(level),
		})
	}

	slog.SetDefault(slog.New(handler))
}

// getLogLevel converts string level to slog.Level
func getLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
