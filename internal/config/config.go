package config

import "os"

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Static   StaticConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. URL has no default: a
// missing DATABASE_URL is a fatal startup condition, checked in main.
type DatabaseConfig struct {
	URL string
}

// AdminConfig holds the shared admin secret gating the admin endpoints
type AdminConfig struct {
	Key string
}

// StaticConfig holds the optional static front-end directory
type StaticConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Admin: AdminConfig{
			Key: getEnv("ADMIN_KEY", "cybershield-admin-secret"),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "./static"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
