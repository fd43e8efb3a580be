package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database (MySQL DSN, go-sql-driver format)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Uploaded catalog images
	UploadDir string `mapstructure:"UPLOAD_DIR"`
	// PublicBaseURL overrides the request origin when building image URLs.
	// Leave empty to derive from each request's Host header.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "floreria:floreria@tcp(localhost:3306)/floreria")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
