package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "HANGMAN_"

// EnvConfig holds overrides read from the environment. Unset variables stay nil.
type EnvConfig struct {
	Guesses  *int    `env:"GUESSES"`
	File     *string `env:"FILE"`
	Plain    *bool   `env:"PLAIN"`
	LogLevel *string `env:"LOG_LEVEL"`
}

// LoadEnv reads HANGMAN_* overrides from the process environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Settings is the merged file and environment configuration. Nil fields were
// not set by either layer.
type Settings struct {
	Guesses  *int
	File     *string
	Plain    *bool
	LogLevel *string
}

// Merge layers environment overrides on top of the file config.
func Merge(file FileConfig, envCfg EnvConfig) Settings {
	return Settings{
		Guesses:  firstSet(envCfg.Guesses, file.Game.Guesses),
		File:     firstSet(envCfg.File, file.Game.File),
		Plain:    firstSet(envCfg.Plain, file.UI.Plain),
		LogLevel: firstSet(envCfg.LogLevel, file.Log.Level),
	}
}

// Load reads the config file at path and applies environment overrides.
func Load(path string) (Settings, error) {
	fileCfg, err := LoadConfig(path)
	if err != nil {
		return Settings{}, err
	}
	envCfg, err := LoadEnv()
	if err != nil {
		return Settings{}, err
	}
	return Merge(fileCfg, envCfg), nil
}

func firstSet[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
