package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PGHost       string
	PGUser       string
	PGDBName     string
	PGPassword   string
	PGPort       string
	JwtSecretKey string
	HTTPPort     string

	ElasticAPMServerURL   string
	ElasticAPMServiceName string
	ElasticAPMEnvironment string

	BillingSchedule string
	DueWarningDays  int
	GraceDays       int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
	}

	config := &Config{
		PGHost:       os.Getenv("PG_HOST"),
		PGUser:       os.Getenv("PG_USER"),
		PGDBName:     os.Getenv("PG_DBNAME"),
		PGPassword:   os.Getenv("PG_PASSWORD"),
		PGPort:       os.Getenv("PG_PORT"),
		JwtSecretKey: os.Getenv("JwtSecretKey"),
		HTTPPort:     getEnv("HTTP_PORT", "4000"),

		ElasticAPMServerURL:   os.Getenv("ELASTIC_APM_SERVER_URL"),
		ElasticAPMServiceName: os.Getenv("ELASTIC_APM_SERVICE_NAME"),
		ElasticAPMEnvironment: os.Getenv("ELASTIC_APM_ENVIRONMENT"),

		// Daily sweep before the office opens.
		BillingSchedule: getEnv("BILLING_SCHEDULE", "0 1 * * *"),
		DueWarningDays:  getEnvInt("DUE_WARNING_DAYS", 3),
		GraceDays:       getEnvInt("GRACE_DAYS", 2),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
