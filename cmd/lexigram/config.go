package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexigram/internal/config"
	"github.com/verte-zerg/lexigram/internal/define"
	"github.com/verte-zerg/lexigram/internal/store"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lexigram configuration
# Uncomment a value to enable it. LEXIGRAM_* variables override this file;
# CLI flags override both.

[find]
# wordlist = %q  # One word per line, .gz allowed ($LEXIGRAM_WORDLIST)
# min-length = %d         # Minimum word length ($LEXIGRAM_MIN_LENGTH)
# alphabet = %q      # ascii or unicode ($LEXIGRAM_ALPHABET)
# sort = %q         # alpha, length, difficulty or score
# desc = %t            # Sort in descending order

[history]
# max-size = %d          # Searches to keep

[define]
# endpoint = %q  # ($LEXIGRAM_DEFINE_ENDPOINT)
# timeout = %q           # Timeout per lookup
# cache-size = 256        # Definitions kept in memory per run
`,
		config.DefaultWordListPath(),
		defaultMinLength,
		defaultAlphabet,
		defaultSort,
		defaultDesc,
		store.DefaultHistorySize,
		define.DefaultEndpoint,
		define.DefaultTimeout.String(),
	)
}
