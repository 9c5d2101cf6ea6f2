package config

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port            string
	MetricsPort     string
	DBPath          string
	APIKey          string
	AdminToken      string
	StartingBalance decimal.Decimal
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		DBPath:      getEnv("DB_PATH", "casino.db"),
		APIKey:      os.Getenv("API_KEY"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
	}

	if cfg.APIKey == "" || cfg.AdminToken == "" {
		log.Fatal("Missing critical environment variables")
	}

	start, err := decimal.NewFromString(getEnv("STARTING_BALANCE", "1000"))
	if err != nil || start.IsNegative() {
		log.Fatal("STARTING_BALANCE must be a non-negative number")
	}
	cfg.StartingBalance = start

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
