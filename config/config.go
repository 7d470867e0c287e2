package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	AppPort           string
	AppMode           string
	AppEnv            string
	StoreDriver       string
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	DBSSLMode         string
	JWTSecret         string
	JWTExpiryMin      int
	RedisEnabled      bool
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	AuthRateLimit     int
	AuthRateWindowSec int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppMode:           getEnv("APP_MODE", "debug"),
		AppEnv:            getEnv("APP_ENV", "development"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "social_media"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		JWTExpiryMin:      getEnvAsInt("JWT_EXPIRY_MIN", 60),
		RedisEnabled:      getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		AuthRateLimit:     getEnvAsInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindowSec: getEnvAsInt("AUTH_RATE_WINDOW_SEC", 60),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
