package raymarch

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the render tuning knobs.
type Config struct {
	Threads     int
	MaxSteps    int
	MaxDistance Real
	HitEpsilon  Real
}

func DefaultConfig() Config {
	return Config{
		Threads:     ThreadCount,
		MaxSteps:    MaxSteps,
		MaxDistance: MaxDistance,
		HitEpsilon:  HitEpsilon,
	}
}

// withDefaults replaces non-positive values by their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Threads <= 0 {
		c.Threads = d.Threads
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = d.MaxSteps
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = d.MaxDistance
	}
	if c.HitEpsilon <= 0 {
		c.HitEpsilon = d.HitEpsilon
	}
	return c
}

func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max steps must be >= 1, got %d", c.MaxSteps)
	}
	if !isFinite(c.MaxDistance) || !isFinite(c.HitEpsilon) {
		return fmt.Errorf("march distances must be finite, got max=%g eps=%g", c.MaxDistance, c.HitEpsilon)
	}
	if c.HitEpsilon <= 0 || c.HitEpsilon >= c.MaxDistance {
		return fmt.Errorf("hit epsilon must be in (0, max distance), got eps=%g max=%g", c.HitEpsilon, c.MaxDistance)
	}
	return nil
}

// ConfigFromEnv reads THREADS, MAX_STEPS, MAX_DIST and HIT_EPS. Unset or non-positive values
// fall back to the defaults; values that do not parse are an error.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	var err error
	if cfg.Threads, err = envInt("THREADS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxSteps, err = envInt("MAX_STEPS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxDistance, err = envReal("MAX_DIST"); err != nil {
		return Config{}, err
	}
	if cfg.HitEpsilon, err = envReal("HIT_EPS"); err != nil {
		return Config{}, err
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	DebugLog("Loaded config from env: threads=%d, maxSteps=%d, maxDist=%f, hitEps=%f", cfg.Threads, cfg.MaxSteps, cfg.MaxDistance, cfg.HitEpsilon)
	return cfg, nil
}

func envInt(key string) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envReal(key string) (Real, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return Real(f), nil
}
