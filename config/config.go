package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// Database (MySQL)
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBTLS      bool
	// Browser front end allowed by CORS
	AllowedOrigin string
	ServiceName   string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "sistema_juridico"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBTLS:         getEnvBool("DB_TLS", true),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "https://angelesc03.github.io"),
		ServiceName:   getEnv("SERVICE_NAME", "Sistema Jurídico Legal API"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
