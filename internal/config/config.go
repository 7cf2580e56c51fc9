package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	App      AppConfig
	Assets   AssetsConfig
	Export   ExportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret     string
	Expiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AssetsConfig holds the remote document assets used by the exporters.
// The Word template is fatal when unreachable; the PDF background is not.
type AssetsConfig struct {
	TemplateURL   string
	BackgroundURL string
}

// ExportConfig holds the service-hour target for the hours rollup.
type ExportConfig struct {
	TargetHours float64
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "bitacora"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Session = SessionConfig{
		Secret:     getEnv("SESSION_SECRET_KEY", ""),
		Expiration: getEnv("SESSION_EXPIRATION_TIME", "12h"),
	}

	config.Assets = AssetsConfig{
		TemplateURL:   getEnv("REPORT_TEMPLATE_URL", ""),
		BackgroundURL: getEnv("REPORT_BACKGROUND_URL", ""),
	}

	targetHours, err := strconv.ParseFloat(getEnv("SERVICE_TARGET_HOURS", "480"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_TARGET_HOURS: %w", err)
	}
	config.Export = ExportConfig{TargetHours: targetHours}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET_KEY is required")
	}
	if c.Assets.TemplateURL == "" {
		return fmt.Errorf("REPORT_TEMPLATE_URL is required")
	}
	if c.Export.TargetHours <= 0 {
		return fmt.Errorf("SERVICE_TARGET_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
