package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

const defaultMaxUploadMB = 5

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	BaseURL     string
	LogLevel    string
	MaxUploadMB int
	CORSOrigins string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = readAppConfig()
	})
	return appConfig
}

func readAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	name := os.Getenv("APP_NAME")
	if name == "" {
		name = "Cover Letter Assistant"
	}
	return &AppConfig{
		Name:        name,
		Env:         env,
		Port:        normalizePort(os.Getenv("APP_PORT")),
		BaseURL:     os.Getenv("APP_URL"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		MaxUploadMB: envInt("MAX_UPLOAD_MB", defaultMaxUploadMB),
		CORSOrigins: envOr("CORS_ALLOW_ORIGINS", "*"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// MaxUploadBytes is the per-file upload limit.
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// normalizePort accepts "5000" as well as ":5000".
func normalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":5000"
	}
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, defaulting to %d", key, raw, fallback)
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, defaulting to %t", key, raw, fallback)
		return fallback
	}
	return v
}
