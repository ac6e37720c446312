// Package main provides the CLI entrypoint for lexigram.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexigram/internal/config"
	"github.com/verte-zerg/lexigram/internal/generator"
	"github.com/verte-zerg/lexigram/internal/letters"
	"github.com/verte-zerg/lexigram/internal/model"
	"github.com/verte-zerg/lexigram/internal/rank"
	"github.com/verte-zerg/lexigram/internal/store"
	"github.com/verte-zerg/lexigram/internal/tui"
	"github.com/verte-zerg/lexigram/internal/wordlist"
)

const (
	defaultMinLength = 4
	defaultAlphabet  = "ascii"
	defaultSort      = "length"
	defaultDesc      = true
)

var (
	findWordList  string
	findMinLength int
	findAlphabet  string
	findSort      string
	findDesc      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lexigram",
		Short:         "Anagram finder and word scorer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runExplorerCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&findWordList, "wordlist", "", "word list file, one word per line (.gz allowed)")
	flags.IntVar(&findMinLength, "min-length", defaultMinLength, "minimum word length")
	flags.StringVar(&findAlphabet, "alphabet", defaultAlphabet, "letter alphabet (ascii or unicode)")
	flags.StringVar(&findSort, "sort", defaultSort, "sort order (alpha, length, difficulty, score)")
	flags.BoolVar(&findDesc, "desc", defaultDesc, "sort in descending order")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newDefineCmd())
	rootCmd.AddCommand(newFavoritesCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newWordlistCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runExplorerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	m, err := tui.NewModel(cfg, st, words, generator.WordOfDay(words, time.Now()))
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadConfig merges defaults, the config file, LEXIGRAM_* variables and flags,
// later sources winning.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	applyStringConfig(cmd, "wordlist", &findWordList, firstSet(envCfg.WordList, fileCfg.Find.WordList))
	applyIntConfig(cmd, "min-length", &findMinLength, firstSet(envCfg.MinLength, fileCfg.Find.MinLength))
	applyStringConfig(cmd, "alphabet", &findAlphabet, firstSet(envCfg.Alphabet, fileCfg.Find.Alphabet))
	applyStringConfig(cmd, "sort", &findSort, fileCfg.Find.Sort)
	applyBoolConfig(cmd, "desc", &findDesc, fileCfg.Find.Desc)

	historySize := store.DefaultHistorySize
	if fileCfg.History.MaxSize != nil {
		historySize = *fileCfg.History.MaxSize
	}

	cfg := model.Config{
		WordListPath: findWordList,
		MinLength:    findMinLength,
		Alphabet:     findAlphabet,
		Sort:         findSort,
		Desc:         findDesc,
		HistorySize:  historySize,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.MinLength <= 0 {
		return fmt.Errorf("--min-length must be > 0")
	}
	if _, err := letters.ParseAlphabet(cfg.Alphabet); err != nil {
		return fmt.Errorf("--alphabet: %w", err)
	}
	if _, err := rank.ParseCriterion(cfg.Sort); err != nil {
		return fmt.Errorf("--sort: %w", err)
	}
	if cfg.HistorySize <= 0 {
		return fmt.Errorf("history max-size must be > 0")
	}
	return nil
}

func resolveWordListPath(cfg model.Config) string {
	if cfg.WordListPath != "" {
		return cfg.WordListPath
	}
	return config.DefaultWordListPath()
}

// loadWordList reads the configured list and drops entries outside the alphabet.
func loadWordList(cfg model.Config) ([]string, error) {
	alphabet, err := letters.ParseAlphabet(cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	path := resolveWordListPath(cfg)
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, wordListLoadError(path, err)
	}
	words = wordlist.Keep(words, wordlist.FilterForAlphabet(alphabet))
	if len(words) == 0 {
		return nil, wordListLoadError(path, wordlist.ErrEmpty)
	}
	return words, nil
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, wordlist.ErrEmpty) {
		lines = append(lines,
			"Download: lexigram wordlist",
			"Or point --wordlist (or LEXIGRAM_WORDLIST) at a file with one word per line",
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

// recordHistory saves a search; failures are reported but never fatal.
func recordHistory(ctx context.Context, cfg model.Config, input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	st, err := openStore()
	if err != nil {
		logErrf("%v\n", err)
		return
	}
	defer closeStore(st)
	if err := st.AddHistory(ctx, input, time.Now(), cfg.HistorySize); err != nil {
		logErrf("failed to save history: %v\n", err)
	}
}

func firstSet[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
