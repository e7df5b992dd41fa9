package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	OTPTTL       time.Duration
	OTPLength    int
	StoreLatency time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "plattera.db"),
		Port:         getEnv("PORT", "3001"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		OTPTTL:       time.Duration(getEnvInt("OTP_TTL_MINUTES", 5)) * time.Minute,
		OTPLength:    6,
		StoreLatency: time.Duration(getEnvInt("STORE_LATENCY_MS", 0)) * time.Millisecond,
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
