package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              string  `yaml:"port"`
	Env               string  `yaml:"env"`
	DatabaseURL       string  `yaml:"database_url"`
	RedisAddr         string  `yaml:"redis_addr"`
	JWTSecret         string  `yaml:"jwt_secret"`
	JWTIssuer         string  `yaml:"jwt_issuer"`
	AutoRejectPercent float64 `yaml:"auto_reject_percent"`
	// BulkRateLimit: сколько массовых действий администратор может запустить в минуту.
	BulkRateLimit int `yaml:"bulk_rate_limit"`
}

func defaults() Config {
	return Config{
		Port:              "8080",
		Env:               "development",
		JWTSecret:         "dev-secret-change",
		JWTIssuer:         "ats-service",
		AutoRejectPercent: 80,
		BulkRateLimit:     10,
	}
}

// Load reads environment variables, optionally from a .env file if present.
// A YAML file named by CONFIG_FILE is applied first; env vars win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.AutoRejectPercent = getEnvFloat("AUTO_REJECT_PERCENT", cfg.AutoRejectPercent)
	cfg.BulkRateLimit = getEnvInt("BULK_RATE_LIMIT", cfg.BulkRateLimit)

	if cfg.AutoRejectPercent < 0 || cfg.AutoRejectPercent > 100 {
		return Config{}, fmt.Errorf("AUTO_REJECT_PERCENT must be within 0..100, got %v", cfg.AutoRejectPercent)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
