package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"

	"currency-console/internal/fixer"
)

type Config struct {
	FixerKey    string
	FixerURL    string
	HTTPTimeout time.Duration

	// DatabaseURL is optional. When set, commands and loaded snapshots are
	// recorded in Postgres.
	DatabaseURL string

	LogLevel string
	NoColor  bool
}

func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		log.Println(errors.New("Error loading .env file"))
	}

	cfg := Config{
		FixerURL:    fixer.DefaultBaseURL,
		HTTPTimeout: 20 * time.Second,
		LogLevel:    "warn",
	}

	cfg.FixerKey = strings.TrimSpace(os.Getenv("FIXER_KEY"))
	if cfg.FixerKey == "" {
		return Config{}, fmt.Errorf("FIXER_KEY is empty")
	}

	if u := strings.TrimSpace(os.Getenv("FIXER_URL")); u != "" {
		cfg.FixerURL = u
	}

	if t := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT %q is not a positive duration", t)
		}
		cfg.HTTPTimeout = d
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if l := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); l != "" {
		if _, err := levelOption(l); err != nil {
			return Config{}, err
		}
		cfg.LogLevel = l
	}

	_, cfg.NoColor = os.LookupEnv("NO_COLOR")

	return cfg, nil
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("LOG_LEVEL %q is unknown", name)
	}
}
