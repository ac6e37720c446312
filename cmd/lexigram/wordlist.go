package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexigram/internal/config"
	"github.com/verte-zerg/lexigram/internal/letters"
	"github.com/verte-zerg/lexigram/internal/wordfreq"
	"github.com/verte-zerg/lexigram/internal/wordlist"
)

const (
	defaultWordlistLang = "en"
	defaultWordlistSize = 100000
	defaultWordlistMin  = 2
	defaultWordlistMax  = 20
)

var (
	wordlistLang      string
	wordlistSize      int
	wordlistMinLength int
	wordlistOut       string
	wordlistForce     bool
	wordlistLangs     bool
)

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Build a word list from the wordfreq dataset",
		Args:  cobra.NoArgs,
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&wordlistLang, "lang", defaultWordlistLang, "language code")
	cmd.Flags().IntVar(&wordlistSize, "size", defaultWordlistSize, "number of words")
	cmd.Flags().IntVar(&wordlistMinLength, "word-min-length", defaultWordlistMin, "shortest word to keep")
	cmd.Flags().StringVar(&wordlistOut, "out", "", "output path (.gz compresses; default: configured word list)")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite an existing word list")
	cmd.Flags().BoolVar(&wordlistLangs, "langs", false, "list available languages and exit")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	if wordlistSize <= 0 {
		return fmt.Errorf("--size must be > 0")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	alphabet, err := letters.ParseAlphabet(cfg.Alphabet)
	if err != nil {
		return err
	}

	logErrln("Fetching wordfreq metadata...")
	wheel, err := wordfreq.DownloadLatestWheel(cmd.Context(), config.DefaultWordfreqCacheDir())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	if wheel.Cached {
		logErrf("Using cached wheel %s\n", wheel.Filename)
	} else {
		logErrf("Downloaded wheel %s\n", wheel.Filename)
	}

	if wordlistLangs {
		langs, err := wordfreq.Languages(wheel.Path)
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), langs)
	}

	outPath := wordlistOut
	if outPath == "" {
		outPath = resolveWordListPath(cfg)
	}
	if !wordlistForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat word list: %w", err)
		}
	}

	logErrf("Extracting %s word list...\n", wordlistLang)
	words, err := wordfreq.ExtractWords(wheel.Path, wordfreq.Options{
		Lang:      wordlistLang,
		Alphabet:  alphabet,
		MinLength: wordlistMinLength,
		MaxLength: defaultWordlistMax,
		Limit:     wordlistSize,
	})
	if err != nil {
		return fmt.Errorf("failed to extract %s word list: %w", wordlistLang, err)
	}
	if err := wordlist.WriteWords(outPath, words); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %d words to %s\n", len(words), outPath)

	noticePath, err := wordfreq.WriteAttribution(wheel.Path, outPath)
	if err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	logErrf("Wrote %s\n", noticePath)
	return nil
}
