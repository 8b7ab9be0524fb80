package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Data source selection for the record store
const (
	DataSourcePostgres = "postgres"
	DataSourceStatic   = "static"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Record store configuration
	Data DataConfig

	// Database configuration (used when Data.Source is "postgres")
	Database DatabaseConfig

	// Contact form configuration
	Contact ContactConfig

	// GitHub mirror configuration
	GitHub GitHubConfig

	// File download configuration
	Files FilesConfig

	// Admin auth configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DataConfig selects where records are read from
type DataConfig struct {
	Source string // "postgres" or "static"
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// ContactConfig holds contact intake settings
type ContactConfig struct {
	MaxMessageLength int // default 2000; relaxed deployments raise to 5000
	RecipientEmail   string
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SendTimeout      time.Duration
}

// GitHubConfig holds GitHub API mirror settings
type GitHubConfig struct {
	Username string
	Token    string
	Timeout  time.Duration
}

// FilesConfig holds document download settings
type FilesConfig struct {
	DocumentsDir string
}

// AuthConfig holds admin authentication settings
type AuthConfig struct {
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash
	TokenTTL          time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Data: DataConfig{
			Source: getEnv("DATA_SOURCE", DataSourceStatic),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "portfolio"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Contact: ContactConfig{
			MaxMessageLength: getIntEnv("CONTACT_MAX_MESSAGE_LENGTH", 2000),
			RecipientEmail:   getEnv("CONTACT_RECIPIENT", ""),
			SMTPHost:         getEnv("SMTP_HOST", ""),
			SMTPPort:         getEnv("SMTP_PORT", "587"),
			SMTPUser:         getEnv("SMTP_USER", ""),
			SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
			SendTimeout:      getDurationEnv("SMTP_SEND_TIMEOUT", 10*time.Second),
		},
		GitHub: GitHubConfig{
			Username: getEnv("GITHUB_USERNAME", "JemAndrew"),
			Token:    getEnv("GITHUB_TOKEN", ""),
			Timeout:  getDurationEnv("GITHUB_TIMEOUT", 10*time.Second),
		},
		Files: FilesConfig{
			DocumentsDir: getEnv("DOCUMENTS_DIR", "./data/documents"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AdminEmail:        getEnv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			TokenTTL:          getDurationEnv("ADMIN_TOKEN_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.Source != DataSourcePostgres && c.Data.Source != DataSourceStatic {
		return fmt.Errorf("DATA_SOURCE must be %q or %q", DataSourcePostgres, DataSourceStatic)
	}
	if c.Data.Source == DataSourcePostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	if c.Contact.MaxMessageLength < 10 {
		return fmt.Errorf("CONTACT_MAX_MESSAGE_LENGTH must be at least 10")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
