package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexigram/internal/anagram"
	"github.com/verte-zerg/lexigram/internal/generator"
	"github.com/verte-zerg/lexigram/internal/letters"
	"github.com/verte-zerg/lexigram/internal/model"
	"github.com/verte-zerg/lexigram/internal/rank"
	"github.com/verte-zerg/lexigram/internal/stats"
	"github.com/verte-zerg/lexigram/internal/wordlist"
)

var (
	findJSON      bool
	findTable     bool
	findHistogram bool
	findNoHistory bool

	statsJSON bool

	dailyDate string

	randomCount int
)

type findOutput struct {
	Input string   `json:"input"`
	Words []string `json:"words"`
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <letters>",
		Short: "Find words made from the given letters",
		Args:  cobra.ExactArgs(1),
		RunE:  runFindCmd,
	}
	cmd.Flags().BoolVar(&findJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&findTable, "table", false, "print a table with scores and favorites")
	cmd.Flags().BoolVar(&findHistogram, "histogram", false, "print a word length histogram")
	cmd.Flags().BoolVar(&findNoHistory, "no-history", false, "do not record the search")
	return cmd
}

func runFindCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	found, err := findRanked(cfg, args[0], words)
	if err != nil {
		return err
	}
	if !findNoHistory {
		recordHistory(cmd.Context(), cfg, args[0])
	}

	out := cmd.OutOrStdout()
	switch {
	case findJSON:
		return writeJSON(out, findOutput{Input: found.Input, Words: found.Words})
	case findTable:
		favorites := loadFavoriteSet(cmd)
		if err := stats.RenderWordTable(out, found.Words, favorites); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		if err := writeLines(out, found.Words); err != nil {
			return err
		}
	}
	if findHistogram && !findJSON {
		if err := stats.RenderLengthHistogram(out, found.Words, 0); err != nil {
			return fmt.Errorf("failed to write histogram: %w", err)
		}
	}
	return nil
}

// findRanked runs the finder and applies the configured ordering.
func findRanked(cfg model.Config, input string, words []string) (anagram.Result, error) {
	alphabet, err := letters.ParseAlphabet(cfg.Alphabet)
	if err != nil {
		return anagram.Result{}, err
	}
	criterion, err := rank.ParseCriterion(cfg.Sort)
	if err != nil {
		return anagram.Result{}, err
	}
	res := anagram.Finder{Alphabet: alphabet}.Find(input, words, cfg.MinLength)
	if cfg.Desc {
		res.Words, err = rank.SortDesc(res.Words, criterion)
	} else {
		res.Words, err = rank.Sort(res.Words, criterion)
	}
	return res, err
}

func loadFavoriteSet(cmd *cobra.Command) map[string]bool {
	st, err := openStore()
	if err != nil {
		logErrf("%v\n", err)
		return nil
	}
	defer closeStore(st)
	favorites, err := st.FavoriteSet(cmd.Context())
	if err != nil {
		logErrf("failed to load favorites: %v\n", err)
		return nil
	}
	return favorites
}

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <letters>",
		Short: "Print a search and the word of the day as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runShareCmd,
	}
}

func runShareCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	found, err := findRanked(cfg, args[0], words)
	if err != nil {
		return err
	}
	content := model.ShareableContent{
		Input:        found.Input,
		Anagrams:     found.Words,
		WordOfTheDay: generator.WordOfDay(words, time.Now()),
	}
	return writeJSON(cmd.OutOrStdout(), content)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <word>...",
		Short: "Show statistics for words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsJSON, "json", false, "print statistics as JSON")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if statsJSON {
		all := make(map[string]model.WordStats, len(args))
		for _, word := range args {
			all[word] = stats.Compute(word)
		}
		return writeJSON(out, all)
	}
	for i, word := range args {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := stats.RenderWordStats(out, word, stats.Compute(word)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [word...]",
		Short: "Sort words given as arguments or on stdin",
		RunE:  runSortCmd,
	}
}

func runSortCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words := args
	if len(words) == 0 {
		words, err = wordlist.Parse(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read words: %w", err)
		}
	}
	criterion, err := rank.ParseCriterion(cfg.Sort)
	if err != nil {
		return err
	}
	var sorted []string
	if cfg.Desc {
		sorted, err = rank.SortDesc(words, criterion)
	} else {
		sorted, err = rank.Sort(words, criterion)
	}
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), sorted)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Check whether words are in the word list",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	index := wordlist.NewIndex(words)
	out := cmd.OutOrStdout()
	missing := 0
	for _, word := range args {
		verdict := "valid"
		if !index.Contains(word) {
			verdict = "not found"
			missing++
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", word, verdict); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d words not in the word list", missing, len(args))
	}
	return nil
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the word of the day",
		Args:  cobra.NoArgs,
		RunE:  runDailyCmd,
	}
	cmd.Flags().StringVar(&dailyDate, "date", "", "date (YYYY-MM-DD, default today)")
	return cmd
}

func runDailyCmd(cmd *cobra.Command, _ []string) error {
	day := time.Now()
	if dailyDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dailyDate, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --date value: %w", err)
		}
		day = parsed
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), []string{generator.WordOfDay(words, day)})
}

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random words from the word list",
		Args:  cobra.NoArgs,
		RunE:  runRandomCmd,
	}
	cmd.Flags().IntVar(&randomCount, "count", 1, "number of words")
	return cmd
}

func runRandomCmd(cmd *cobra.Command, _ []string) error {
	if randomCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	gen := generator.New()
	picked := make([]string, 0, randomCount)
	for i := 0; i < randomCount; i++ {
		picked = append(picked, gen.Random(words))
	}
	return writeLines(cmd.OutOrStdout(), picked)
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func trimmedArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			out = append(out, arg)
		}
	}
	return out
}
