package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Find.MinLength != nil || cfg.Define.Endpoint != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[find]
wordlist = "/tmp/words.txt"
min-length = 4
alphabet = "unicode"
sort = "score"
desc = true

[history]
max-size = 20

[define]
endpoint = "http://localhost:9999"
timeout = "3s"
cache-size = 64
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Find.WordList == nil || *cfg.Find.WordList != "/tmp/words.txt" {
		t.Fatalf("unexpected wordlist: %v", cfg.Find.WordList)
	}
	if cfg.Find.MinLength == nil || *cfg.Find.MinLength != 4 {
		t.Fatalf("unexpected min-length: %v", cfg.Find.MinLength)
	}
	if cfg.Find.Alphabet == nil || *cfg.Find.Alphabet != "unicode" {
		t.Fatalf("unexpected alphabet: %v", cfg.Find.Alphabet)
	}
	if cfg.Find.Sort == nil || *cfg.Find.Sort != "score" {
		t.Fatalf("unexpected sort: %v", cfg.Find.Sort)
	}
	if cfg.Find.Desc == nil || !*cfg.Find.Desc {
		t.Fatalf("unexpected desc: %v", cfg.Find.Desc)
	}
	if cfg.History.MaxSize == nil || *cfg.History.MaxSize != 20 {
		t.Fatalf("unexpected max-size: %v", cfg.History.MaxSize)
	}
	if cfg.Define.Timeout == nil || *cfg.Define.Timeout != "3s" {
		t.Fatalf("unexpected timeout: %v", cfg.Define.Timeout)
	}
	if cfg.Define.CacheSize == nil || *cfg.Define.CacheSize != 64 {
		t.Fatalf("unexpected cache-size: %v", cfg.Define.CacheSize)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[find]\nmin-lenght = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "min-lenght") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LEXIGRAM_MIN_LENGTH", "5")
	t.Setenv("LEXIGRAM_ALPHABET", "ascii")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.MinLength == nil || *cfg.MinLength != 5 {
		t.Fatalf("unexpected min length: %v", cfg.MinLength)
	}
	if cfg.Alphabet == nil || *cfg.Alphabet != "ascii" {
		t.Fatalf("unexpected alphabet: %v", cfg.Alphabet)
	}
	if cfg.WordList != nil || cfg.DefineEndpoint != nil {
		t.Fatalf("expected unset variables to stay nil: %+v", cfg)
	}

	t.Setenv("LEXIGRAM_MIN_LENGTH", "many")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultPaths(t *testing.T) {
	cfgHome := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_DATA_HOME", dataHome)

	if got, want := DefaultConfigPath(), filepath.Join(cfgHome, "lexigram", "config.toml"); got != want {
		t.Fatalf("config path: got %q want %q", got, want)
	}
	if got, want := DefaultDBPath(), filepath.Join(dataHome, "lexigram", "lexigram.db"); got != want {
		t.Fatalf("db path: got %q want %q", got, want)
	}

	plain := filepath.Join(cfgHome, "lexigram", "wordlist.txt")
	if got := DefaultWordListPath(); got != plain {
		t.Fatalf("wordlist path: got %q want %q", got, plain)
	}
	if err := os.MkdirAll(filepath.Dir(plain), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(plain+".gz", nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := DefaultWordListPath(); got != plain+".gz" {
		t.Fatalf("expected gzipped list, got %q", got)
	}
	if err := os.WriteFile(plain, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := DefaultWordListPath(); got != plain {
		t.Fatalf("expected plain list, got %q", got)
	}
}
