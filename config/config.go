package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	MongoURL       string
	MongoDB        string
	RedisURL       string
	KafkaBrokers   []string
	KafkaTopic     string
	JWTSecret      string
	AdminEmail     string
	AdminPassword  string
	PaymentLatency time.Duration
	CacheTTL       time.Duration
	StoreTimeout   time.Duration

	// Auth endpoint throttling: sustained requests per minute per IP, and the
	// burst allowance on top.
	AuthRatePerMinute int
	AuthRateBurst     int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "swipemyhood"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers:   strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "order.confirmed"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@swipemyhood.in"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123456"),
		PaymentLatency: getDuration("PAYMENT_LATENCY", 2*time.Second),
		CacheTTL:       getDuration("CACHE_TTL", time.Minute),
		StoreTimeout:   getDuration("STORE_TIMEOUT", 10*time.Second),

		AuthRatePerMinute: getInt("AUTH_RATE_PER_MINUTE", 100),
		AuthRateBurst:     getInt("AUTH_RATE_BURST", 50),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
