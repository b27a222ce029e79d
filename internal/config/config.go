package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	MySQLDSN   string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/mimarfolio?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB    int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass  string `env:"REDIS_PASSWORD"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"change-me"`

	// Seed credentials for the bootstrap admin user.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@mimarportfolyo.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// Local upload storage, used when no S3 bucket is configured.
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`

	// S3/MinIO upload storage. S3Endpoint is only needed for S3-compatible
	// servers such as MinIO.
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3BaseURL   string `env:"S3_BASE_URL"`
}

// UseS3 reports whether uploads go to S3 instead of local disk.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
