package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrBadConfig indicates an environment variable that could not be parsed.
var ErrBadConfig = errors.New("server: invalid configuration")

// Environment variables read by LoadConfig.
const (
	EnvAddr          = "TILEPATH_ADDR"
	EnvMaxCells      = "TILEPATH_MAX_CELLS"
	EnvMaxExpansions = "TILEPATH_MAX_EXPANSIONS"
	EnvReadTimeout   = "TILEPATH_READ_TIMEOUT"
)

// Config holds daemon settings.
type Config struct {
	// Addr is the listen address.
	Addr string
	// MaxCells caps width×height of a request map.
	MaxCells int
	// MaxExpansions caps A* expansions per request; 0 means no cap.
	MaxExpansions int
	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		MaxCells:    1_000_000,
		ReadTimeout: 10 * time.Second,
	}
}

// LoadConfig loads envFiles (default ".env") into the environment without
// overriding variables that are already set, then reads Config from it.
// Missing env files are not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("server: load env file: %w", err)
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	var err error
	if cfg.MaxCells, err = intEnv(EnvMaxCells, cfg.MaxCells, 1); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = intEnv(EnvMaxExpansions, cfg.MaxExpansions, 0); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(EnvReadTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q is not a positive duration", ErrBadConfig, EnvReadTimeout, v)
		}
		cfg.ReadTimeout = d
	}

	return cfg, nil
}

// intEnv reads key as an int no smaller than lo, or returns def if unset.
func intEnv(key string, def, lo int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo {
		return 0, fmt.Errorf("%w: %s=%q must be an integer >= %d", ErrBadConfig, key, v, lo)
	}

	return n, nil
}
