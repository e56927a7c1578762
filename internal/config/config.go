package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	TokenExpiry      time.Duration
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	StatsCacheTTL    time.Duration
	RabbitURI        string
	RabbitExchange   string
	CORSOrigins      []string
	DefaultAdminUser string
	DefaultAdminPass string
}

func New() *Config {
	expiryHours, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "24"))
	if err != nil || expiryHours <= 0 {
		expiryHours = 24
	}
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cacheTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "5m"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDatabase:    getEnv("MONGO_DB", "quizhub"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenExpiry:      time.Duration(expiryHours) * time.Hour,
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PWD", ""),
		RedisDB:          redisDB,
		StatsCacheTTL:    cacheTTL,
		RabbitURI:        getEnv("RABBITMQ_URI", ""),
		RabbitExchange:   getEnv("RABBITMQ_EXCHANGE", ""),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		DefaultAdminUser: getEnv("DEFAULT_ADMIN_USER", "admin"),
		DefaultAdminPass: getEnv("DEFAULT_ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
