package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/homier/robinmap/internal/keygen"
)

type Config struct {
	Keys     int    `toml:"keys"`
	Dist     string `toml:"dist"`
	Hash     string `toml:"hash"`
	Capacity int    `toml:"capacity"`
	Seed     uint64 `toml:"seed"`
	LogLevel string `toml:"log-level"`
}

func DefaultConfig() Config {
	return Config{
		Keys:     1 << 16,
		Dist:     string(keygen.Uniform),
		Hash:     "maphash",
		Seed:     1,
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML file on top of the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Keys <= 0 {
		errs = append(errs, fmt.Errorf("keys must be positive, got %d", c.Keys))
	}

	if c.Capacity < 0 {
		errs = append(errs, fmt.Errorf("capacity must not be negative, got %d", c.Capacity))
	}

	if _, err := keygen.ParseDist(c.Dist); err != nil {
		errs = append(errs, err)
	}

	if _, err := keygen.Hasher(c.Hash); err != nil {
		errs = append(errs, err)
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}

	return errors.Join(errs...)
}
