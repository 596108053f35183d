package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Methods accepted by --method.
const (
	methodStream = "stream"
	methodFlood  = "flood"
)

// Config holds the defaults for every flag, read from the environment.
type Config struct {
	Method   string
	Workers  int
	Cache    int
	LogLevel string
}

// LoadConfig reads an optional .env file and then PLOTFENCE_* variables.
// Unset variables keep their defaults; flags override whatever is loaded here.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Method:   firstNonEmpty(strings.TrimSpace(os.Getenv("PLOTFENCE_METHOD")), methodStream),
		LogLevel: firstNonEmpty(strings.TrimSpace(os.Getenv("PLOTFENCE_LOG_LEVEL")), "warn"),
	}
	var err error
	if cfg.Workers, err = envInt("PLOTFENCE_WORKERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.Cache, err = envInt("PLOTFENCE_CACHE", 0); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects unknown methods, levels and negative sizes.
func (c Config) Validate() error {
	switch c.Method {
	case methodStream, methodFlood:
	default:
		return fmt.Errorf("unknown method %q (want %s or %s)", c.Method, methodStream, methodFlood)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative (%d)", c.Workers)
	}
	if c.Cache < 0 {
		return fmt.Errorf("cache cannot be negative (%d)", c.Cache)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
