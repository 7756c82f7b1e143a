package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string
	Env  string

	// CreditAPIBaseURL is the Remote Credit Service endpoint. Injectable so the
	// transport client can be pointed at a mock server in tests.
	CreditAPIBaseURL string
	CreditAPITimeout time.Duration

	RequestBodyLimit int64
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "local"),
		CreditAPIBaseURL: getEnv("CREDIT_API_BASE_URL", "http://localhost:8000"),
		CreditAPITimeout: getEnvDuration("CREDIT_API_TIMEOUT", 30*time.Second),
		RequestBodyLimit: getEnvInt64("REQUEST_BODY_LIMIT", 1<<20),
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		var out int64
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
