package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup. Missing
// secrets or connection strings are a fatal condition; there is no fallback.
type Config struct {
	Port          string `validate:"required"`
	DBDSN         string `validate:"required"`
	MongoURI      string `validate:"required"`
	AccessSecret  string `validate:"required"`
	RefreshSecret string `validate:"required"`
	UploadBase    string `validate:"required"`
}

func loadConfig() (*Config, error) {
	// .env is optional and never overrides variables already set
	_ = godotenv.Load()

	cfg := &Config{
		Port:          envOr("PORT", "8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		MongoURI:      os.Getenv("MONGO_URI"),
		AccessSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		UploadBase:    envOr("UPLOAD_BASE", "uploads"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
