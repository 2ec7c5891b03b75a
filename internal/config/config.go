package config

import (
	"os"
	"strconv"
	"time"

	"taskdeck/internal/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	// Tokens expire this long after issuance.
	TokenTTL   time.Duration
	BcryptCost int

	LogLevel string
	LogJSON  bool

	// Redis for the auth rate limiter; empty addr disables it.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthRateLimit  int
	AuthRateWindow time.Duration
	APIRateLimit   int
	APIRateWindow  time.Duration
}

// Load reads configuration from the environment (.env honored when present).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	tokenTTL := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			tokenTTL = d
		}
	}

	bcryptCost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= bcrypt.MinCost && n <= bcrypt.MaxCost {
			bcryptCost = n
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:        port,
		DatabaseURL:    dbURL,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
		BcryptCost:     bcryptCost,
		LogLevel:       logLevel,
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: envSeconds("AUTH_RATE_WINDOW_SECONDS", time.Minute),
		APIRateLimit:   envInt("API_RATE_LIMIT", 60),
		APIRateWindow:  envSeconds("API_RATE_WINDOW_SECONDS", time.Minute),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
