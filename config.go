package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the service configuration: defaults, overridden by
// config.yaml when present, overridden again by environment variables
// (a .env file is honored via godotenv).
type Config struct {
	Server struct {
		Port          string `yaml:"port"`
		AllowedOrigin string `yaml:"allowed_origin"` // static front-end origin; localhost is always allowed
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Catalog struct {
		Dir string `yaml:"dir"`
	} `yaml:"catalog"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Database.Path = "quiz.db"
	cfg.Catalog.Dir = "data"
	cfg.Logging.Level = "info"

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.AllowedOrigin = getEnv("ALLOWED_ORIGIN", cfg.Server.AllowedOrigin)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Catalog.Dir = getEnv("DATA_DIR", cfg.Catalog.Dir)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
