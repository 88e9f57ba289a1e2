package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// insecure default, accepted only outside production
const devSessionSecret = "dev_session_secret"

// ErrMissingSessionSecret is returned by Validate when running in
// production without SESSION_SECRET configured.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set in production")

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxConns     int32
	DBMinConns     int32
	DBMaxConnLife  time.Duration
	DBQueryTimeout time.Duration

	// Redis (rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Session
	SessionSecret string
	SessionTTL    time.Duration

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Migrations
	MigrationsDir string

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "evenly-backend"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "4000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     getenv("DB_PASSWORD", "postgres"),
		DBName:         getenv("DB_NAME", "evenly"),
		DBSSLMode:      getenv("DB_SSLMODE", "disable"),
		DBMaxConns:     int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:     int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife:  getdur("DB_MAX_CONN_LIFETIME", time.Hour),
		DBQueryTimeout: getdur("DB_QUERY_TIMEOUT", 5*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		SessionSecret: getenv("SESSION_SECRET", devSessionSecret),
		SessionTTL:    getdur("SESSION_TTL", 7*24*time.Hour),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate rejects configurations that must not reach production.
// The development session secret is tolerated everywhere else so local
// setups work out of the box.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.SessionSecret == "" || c.SessionSecret == devSessionSecret) {
		return ErrMissingSessionSecret
	}
	return nil
}

// IsProduction reports whether the app runs with production hardening
// (Secure cookies, suppressed error detail).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment reports whether verbose error detail may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// PostgresDSN returns a DSN compatible with pgx
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
