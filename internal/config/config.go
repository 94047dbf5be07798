package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	HTTPPort    string
	LogMode     string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	JWTSecret   string
	CORSOrigins string
	OTelStdout  bool
	AI          *AIConfig
}

// Load reads configuration from the environment. Outside production a
// local .env file is loaded first when present.
func Load() *Config {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		_ = godotenv.Load()
	}

	return &Config{
		Env:         env,
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogMode:     getEnv("LOG_MODE", "dev"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "creatorlab"),
		RedisAddr:   strings.TrimPrefix(os.Getenv("REDIS_URI"), "redis://"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		OTelStdout:  parseBool(os.Getenv("OTEL_STDOUT")),
		AI:          DefaultAIConfig(),
	}
}

// UseMongo reports whether the document store is configured
func (c *Config) UseMongo() bool {
	return c.MongoURI != ""
}

// UseRedis reports whether the content cache is configured
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
