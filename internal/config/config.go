package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config holds process-wide settings read once at start-up
type Config struct {
	Env              string
	Port             string
	MongoURI         string
	MongoDB          string
	RedisURL         string
	JWTSecret        string
	JWTTTLHours      int
	FrontendURL      string
	CloudinaryURL    string
	UploadDir        string
	QuestionBankPath string
	LogLevel         string
	MaxUploadBytes   int64
}

// Load reads .env (when present) and the process environment
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "pharmacademy"),
		RedisURL:         getEnv("REDIS_URI", ""),
		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
		JWTTTLHours:      getEnvInt("JWT_TTL_HOURS", 24*30),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		QuestionBankPath: getEnv("QUESTION_BANK_PATH", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MaxUploadBytes:   10 << 20,
	}
}

// RedisOptions parses REDIS_URI. A redis:// or rediss:// URL keeps its
// credentials, database index and TLS setting; a bare host:port is used as
// the address. It returns nil when Redis is not configured.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.RedisURL == "" {
		return nil, nil
	}
	if !strings.Contains(c.RedisURL, "://") {
		return &redis.Options{Addr: c.RedisURL}, nil
	}
	return redis.ParseURL(c.RedisURL)
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
