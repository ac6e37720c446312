// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Find    FindConfig    `toml:"find"`
	History HistoryConfig `toml:"history"`
	Define  DefineConfig  `toml:"define"`
}

// FindConfig maps anagram search settings.
type FindConfig struct {
	WordList  *string `toml:"wordlist"`
	MinLength *int    `toml:"min-length"`
	Alphabet  *string `toml:"alphabet"`
	Sort      *string `toml:"sort"`
	Desc      *bool   `toml:"desc"`
}

// HistoryConfig maps search history settings.
type HistoryConfig struct {
	MaxSize *int `toml:"max-size"`
}

// DefineConfig maps dictionary lookup settings.
type DefineConfig struct {
	Endpoint  *string `toml:"endpoint"`
	Timeout   *string `toml:"timeout"`
	CacheSize *int    `toml:"cache-size"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
