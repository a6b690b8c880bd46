package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/joho/godotenv"
)

// Store drivers selectable through STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	StoreDriver  string        // Optional: sqlite, postgres, mongo or memory (default: sqlite)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./portfolio.db)
	DatabaseURL  string        // Required for postgres
	MongoURI     string        // Required for mongo
	MongoDB      string        // Optional: mongo database name (default: portfolio)
	StoreTimeout time.Duration // Optional: per store call timeout, 0 disables (default: 5s)

	JWTSecret string        // Required: HS256 secret, at least 32 bytes
	Issuer    string        // Optional: issuer claim for tokens (default: portfolio-api)
	TokenTTL  time.Duration // Optional: session lifetime (default: 24h)

	AdminUsername string // Optional: seed admin username (default: admin)
	AdminPassword string // Required when the store has no admin yet
	PepperFile    string // Optional: file holding the password pepper, empty disables it

	AllowedOrigins []string // Optional: CORS origins (default: *)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		StoreDriver:  strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "portfolio.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		MongoDB:      getEnvOrDefault("DB_NAME", "portfolio"),
		StoreTimeout: getEnvDurationOrDefault("STORE_TIMEOUT", 5*time.Second),

		JWTSecret: os.Getenv("JWT_SECRET"),
		Issuer:    getEnvOrDefault("JWT_ISSUER", "portfolio-api"),
		TokenTTL:  getEnvDurationOrDefault("TOKEN_TTL", jwtx.DefaultSessionTTL),

		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		PepperFile:    os.Getenv("PASSWORD_PEPPER_FILE"),

		AllowedOrigins: splitCSV(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports every missing or invalid setting at once. The seed
// password is checked later, only when the store turns out to be empty.
func (c Config) Validate() error {
	var errs []error

	switch {
	case c.JWTSecret == "":
		errs = append(errs, errors.New("JWT_SECRET is required"))
	case len(c.JWTSecret) < jwtx.MinSecretLength:
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}

	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required for the mongo driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.AdminUsername == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func splitCSV(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
