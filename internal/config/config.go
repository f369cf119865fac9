package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	SessionSecret string
	SessionStore  string
	RedisHost     string
	RedisPort     string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	CacheBackend         string
	AssignmentStrictCaps bool
}

// Load reads the configuration, seeding the environment from the given .env
// files first. Missing files are ignored and real environment variables win.
func Load(envFiles ...string) *Config {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionStore:  getEnv("SESSION_STORE", "cookie"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "hruser"),
		DBPassword: getEnv("DB_PASSWORD", "hrpassword"),
		DBName:     getEnv("DB_NAME", "hr_dashboard"),
		SQLitePath: getEnv("SQLITE_PATH", "hr_dashboard.db"),

		CacheBackend:         getEnv("CACHE_BACKEND", "database"),
		AssignmentStrictCaps: getBool("ASSIGNMENT_STRICT_CAPS", false),
	}
}

// RedisAddr returns the host:port pair of the redis server
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getDuration accepts Go durations ("5s") or a bare number of seconds
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
