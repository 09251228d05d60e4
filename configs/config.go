package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	OrdersSource string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, falling back to environment")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "carshop.db"),
		OrdersSource: getEnv("ORDERS_SOURCE", "orders.db"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(24) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
