// Package config loads application configuration from environment variables
// into an immutable value constructed once at process start. Nothing reads
// ambient configuration during request handling; the loaded Config is passed
// into constructors.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// TokenTTL is the fixed session token lifetime. Expiry is the only
// deactivation mechanism for tokens; there is no revocation list.
const TokenTTL = 24 * time.Hour

// fallbackJWTSecret is the compiled-in default signing key used when
// JWT_SECRET is unset. It is deliberately the original system's weak default;
// a warning is logged whenever it is used.
const fallbackJWTSecret = "123456"

// Config holds all runtime configuration values. Strings for identifiers and
// secrets, ints and durations for limits.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	DBUser          string        // database username
	DBPass          string        // database password (optional)
	DBHost          string        // database host address
	DBPort          string        // database port number
	DBName          string        // database name
	JWTSecret       string        // secret used to sign session tokens
	BcryptCost      int           // bcrypt cost for password hashing
	AMQPURL         string        // RabbitMQ broker URL for audit events
	LoginRateLimit  int           // max login attempts per client per window
	LoginRateWindow time.Duration // rate limit window for the login endpoint
	CacheTTL        time.Duration // TTL for cached listing responses
}

// Load reads configuration from the environment, applying defaults for
// anything unset so the service boots in a bare development environment.
func Load() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("warning: JWT_SECRET not set, falling back to insecure default")
		secret = fallbackJWTSecret
	}
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "8080"),
		DBUser:          getenv("DB_USER", "root"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "3306"),
		DBName:          getenv("DB_NAME", "vehicle_registry"),
		JWTSecret:       secret,
		BcryptCost:      envInt("BCRYPT_COST", 10),
		AMQPURL:         os.Getenv("RABBITMQ_URL"),
		LoginRateLimit:  envInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: envDur("LOGIN_RATE_WINDOW", time.Minute),
		CacheTTL:        envDur("CACHE_TTL", 30*time.Second),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
