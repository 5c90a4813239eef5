package config

import (
	"os"
	"strconv"
)

// Config carries the runtime settings for the API binary. All values
// come from the environment with development defaults.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	JWTSecret      string
	CacheLimit     int
	ApplicationBkt string
	GrievanceBkt   string
}

func Load() *Config {
	return &Config{
		HTTPAddr:       getEnv("JANSEVA_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JANSEVA_JWT_SECRET", "janseva-dev-secret-change-me"),
		CacheLimit:     getEnvInt("JANSEVA_CACHE_LIMIT", 200),
		ApplicationBkt: getEnv("JANSEVA_APPLICATION_BUCKET", "application-documents"),
		GrievanceBkt:   getEnv("JANSEVA_GRIEVANCE_BUCKET", "grievance-documents"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
