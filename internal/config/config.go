// Package config holds the HTTP server settings. Values come from the
// defaults, then an optional .env file, then GORCC_* environment variables;
// command line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gorcc/internal/interaction"
)

// Environment variable names
const (
	EnvAddr    = "GORCC_ADDR"
	EnvRate    = "GORCC_RATE"
	EnvBurst   = "GORCC_BURST"
	EnvSteps   = "GORCC_STEPS"
	EnvOrigins = "GORCC_CORS_ORIGINS"
)

// Config is the server configuration
type Config struct {
	Addr    string   // Listen address
	Rate    float64  // Requests per second allowed per client IP
	Burst   int      // Rate limiter bucket size
	Steps   int      // Neutral axis sweep steps per envelope
	Origins []string // CORS allowed origins; "*" allows all
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Addr:    ":8080",
		Rate:    5,
		Burst:   10,
		Steps:   interaction.DefaultSteps,
		Origins: []string{"*"},
	}
}

// Load reads the dotenv file (if present) into the process environment and
// returns the defaults overridden by the environment. An empty envFile means
// ".env" in the working directory.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	c := Default()
	if err := c.loadEnv(); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRate, err)
		}
		c.Rate = rate
	}
	if v := os.Getenv(EnvBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBurst, err)
		}
		c.Burst = burst
	}
	if v := os.Getenv(EnvSteps); v != "" {
		steps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSteps, err)
		}
		c.Steps = steps
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		c.Origins = c.Origins[:0]
		for _, origin := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				c.Origins = append(c.Origins, trimmed)
			}
		}
	}
	return nil
}

// Validate checks that the limits make sense
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %g", c.Rate)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	if c.Steps < interaction.MinSteps {
		return fmt.Errorf("steps must be at least %d, got %d", interaction.MinSteps, c.Steps)
	}
	return nil
}
