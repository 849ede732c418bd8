package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	KasAPI    KasAPIConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Export    ExportConfig
	Locale    LocaleConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration for the export history
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// KasAPIConfig holds the remote uang kas API configuration.
// Username and Password are optional; when both are set the service logs in at startup.
type KasAPIConfig struct {
	BaseURL  string
	Username string
	Password string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration.
// An empty expression disables the rekapan snapshot job.
type SchedulerConfig struct {
	RekapanCronExpression string
}

// ExportConfig holds export configuration
type ExportConfig struct {
	Dir string
}

// LocaleConfig holds the time zone used for date grouping and filenames
type LocaleConfig struct {
	TimeZone string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "uang_kas"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		KasAPI: KasAPIConfig{
			BaseURL:  strings.TrimRight(getEnv("KAS_API_BASE_URL", "http://localhost:8081/api"), "/"),
			Username: getEnv("KAS_API_USERNAME", ""),
			Password: getEnv("KAS_API_PASSWORD", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"),
		},
		Scheduler: SchedulerConfig{
			RekapanCronExpression: getEnv("REKAPAN_CRON_EXPRESSION", "0 0 1 1 * *"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "tmp/exports"),
		},
		Locale: LocaleConfig{
			TimeZone: getEnv("TIME_ZONE", "Asia/Jakarta"),
		},
	}

	if config.KasAPI.BaseURL == "" {
		return nil, fmt.Errorf("KAS_API_BASE_URL must not be empty")
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// AllowedOriginList splits the comma separated origin list
func (c *CORSConfig) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// HasCredentials reports whether startup login is configured
func (k *KasAPIConfig) HasCredentials() bool {
	return k.Username != "" && k.Password != ""
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
