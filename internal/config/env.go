package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds overrides read from the environment. Unset variables stay nil.
type EnvConfig struct {
	WordList       *string `env:"LEXIGRAM_WORDLIST"`
	MinLength      *int    `env:"LEXIGRAM_MIN_LENGTH"`
	Alphabet       *string `env:"LEXIGRAM_ALPHABET"`
	DefineEndpoint *string `env:"LEXIGRAM_DEFINE_ENDPOINT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the LEXIGRAM_* overrides.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
