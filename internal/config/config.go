// Package config loads the demo driver settings from the environment and
// optional .env files, then validates every setting at once.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zeebo/errs"

	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
	"github.com/ib-77/vrop/pkg/rop/solo"
)

var configErr = errs.Class("config")

// ErrInvalidConfig marks settings that parsed but did not validate.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	OutputYAML = "yaml"
	OutputText = "text"
)

type Config struct {
	Environment string `env:"VROP_ENV" envDefault:"development"`
	LogLevel    string `env:"VROP_LOG_LEVEL" envDefault:"info"`
	Output      string `env:"VROP_OUTPUT" envDefault:"yaml"`
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

// Load reads the given .env files (missing files are skipped), parses VROP_*
// variables and validates the result.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, configErr.Wrap(err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, configErr.Wrap(err)
	}

	valid, reasons, ok := Validate(cfg).Get()
	if !ok {
		return Config{}, configErr.New("%w: %s", ErrInvalidConfig, reasons.Error())
	}
	return valid, nil
}

// Validate checks every field and reports all bad settings together.
func Validate(cfg Config) rop.Result[Config, merge.Messages] {
	return solo.Lift3(
		func(environment, level, output string) Config {
			return Config{Environment: environment, LogLevel: level, Output: output}
		},
		oneOf("VROP_ENV", cfg.Environment, "development", "production"),
		oneOf("VROP_LOG_LEVEL", strings.ToLower(cfg.LogLevel), "debug", "info", "warn", "error"),
		oneOf("VROP_OUTPUT", cfg.Output, OutputYAML, OutputText),
	)
}

func oneOf(name, value string, allowed ...string) rop.Result[string, merge.Messages] {
	return solo.Validate(value,
		func(v string) bool { return slices.Contains(allowed, v) },
		merge.NewMessages(fmt.Sprintf("%s must be one of %s, got %q", name, strings.Join(allowed, ", "), value)))
}
