package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver        string
	DBSource        string
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "restaurant.db"),
		ConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 3),
		ConnectBackoff:  time.Duration(getEnvInt("DB_CONNECT_BACKOFF_MS", 500)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
