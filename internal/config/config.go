package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration values.
type Config struct {
	Secret         string
	HTTPPort       string
	DatabaseDriver string
	DatabaseDSN    string
	MaxOpenConns   int
	AuthEnabled    bool
	AllowedOrigins []string
	SeedCSV        string
	LogLevel       slog.Level
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		slog.Warn("invalid HTTP_PORT, defaulting to 8080", "value", port)
		port = "8080"
	}

	driver := strings.ToLower(os.Getenv("DATABASE_DRIVER"))
	switch driver {
	case "":
		driver = DriverSQLite
	case "postgresql", "pgx":
		driver = DriverPostgres
	case DriverSQLite, DriverPostgres:
	default:
		slog.Warn("unknown DATABASE_DRIVER, defaulting to sqlite", "value", driver)
		driver = DriverSQLite
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN(driver)
	}

	maxOpen := 10
	if driver == DriverSQLite {
		maxOpen = 1
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" && driver != DriverSQLite {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxOpen = n
		} else {
			slog.Warn("invalid DB_MAX_OPEN_CONNS, keeping default", "value", raw, "default", maxOpen)
		}
	}

	authEnabled, _ := strconv.ParseBool(os.Getenv("AUTH_ENABLED"))

	origins := []string{"*"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}

	return Config{
		Secret:         secret,
		HTTPPort:       port,
		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		MaxOpenConns:   maxOpen,
		AuthEnabled:    authEnabled,
		AllowedOrigins: origins,
		SeedCSV:        os.Getenv("SEED_MEDICINES_CSV"),
		LogLevel:       level,
	}
}

func defaultDSN(driver string) string {
	if driver == DriverSQLite {
		return "file:pharmacy.db?_pragma=busy_timeout(5000)"
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "pharmacy"
	}
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, dbPort, name)
}
