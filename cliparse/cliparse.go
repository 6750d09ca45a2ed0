package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/zebrafish-catalog/db"
)

const (
	DefaultPort        = 5000
	DefaultDatabaseURL = "zebrafish.db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StaticDir    string
	CORSOrigin   string
}

// LoadEnv reads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set. With no
// arguments it reads .env. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("zebrafish-catalog", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the single-page client")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin (default: echo request origin)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultDatabaseURL
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = string(dialect)

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	return cfg, nil
}

// Dialect parses DatabaseType. ParseFlags has already checked it, so an
// error here means the Config was built by hand.
func (c Config) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.DatabaseType)
}
