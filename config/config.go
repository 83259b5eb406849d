package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read from the environment at startup; see .env.example.
type Config struct {
	Port       string
	Role       string // "server" or "gateway"
	ServerURL  string // gateway forwards here
	RedisAddr  string
	RedisPwd   string
	WebOrigin  string
	CacheTTL   time.Duration
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}

func Load() Config {
	ttl := 60 * time.Second
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Second
		}
	}
	return Config{
		Port:       getenv("PORT", "9090"),
		Role:       getenv("APP_ROLE", "server"),
		ServerURL:  getenv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		RedisAddr:  getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigin:  getenv("WEB_ORIGIN", "http://localhost:3000"),
		CacheTTL:   ttl,
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "shareit"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
