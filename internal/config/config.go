package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string

	// SQLPath is the path to the SQLite database file.
	SQLPath string

	// MigrationsDir holds the golang-migrate .sql files.
	MigrationsDir string

	// WebDir holds the static browser client and rules.md.
	WebDir string

	// CORSAllowedOrigins is a list of allowed origins, "*" allows all.
	CORSAllowedOrigins []string

	// RateLimit is the sustained requests-per-second budget per server,
	// RateBurst the token bucket size. A zero RateLimit disables limiting.
	RateLimit float64
	RateBurst int
}

// New reads the configuration from an optional .env file and the
// environment, falling back to development defaults.
func New() (*Config, error) {
	// A missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	c := &Config{
		ListenAddr:         "127.0.0.1:3000",
		SQLPath:            "./kicker.db",
		MigrationsDir:      "resources/migrations",
		WebDir:             "resources/web",
		CORSAllowedOrigins: []string{"*"},
		RateLimit:          25.0,
		RateBurst:          50,
	}

	vars := []struct {
		src string
		dst *string
	}{
		{"KICKER_LISTEN_ADDR", &c.ListenAddr},
		{"KICKER_SQL_PATH", &c.SQLPath},
		{"KICKER_MIGRATIONS_DIR", &c.MigrationsDir},
		{"KICKER_WEB_DIR", &c.WebDir},
	}

	for _, v := range vars {
		if str := os.Getenv(v.src); str != "" {
			*v.dst = str
		}
	}

	if str := os.Getenv("KICKER_CORS_ORIGINS"); str != "" {
		c.CORSAllowedOrigins = strings.Split(str, ",")
	}

	if str := os.Getenv("KICKER_RATE_LIMIT"); str != "" {
		limit, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, err
		}
		c.RateLimit = limit
	}

	if str := os.Getenv("KICKER_RATE_BURST"); str != "" {
		burst, err := strconv.Atoi(str)
		if err != nil {
			return nil, err
		}
		c.RateBurst = burst
	}

	return c, nil
}
