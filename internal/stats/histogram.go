package stats

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	minBarWidth         = 10
	terminalWidthBackup = 80
	barChar             = "#"
	colorBar            = "\x1b[36m"
	colorReset          = "\x1b[0m"
)

// LengthBucket counts the words of one length.
type LengthBucket struct {
	Length int
	Count  int
}

// LengthBuckets groups words by rune length, longest first.
func LengthBuckets(words []string) []LengthBucket {
	counts := map[int]int{}
	for _, word := range words {
		counts[utf8.RuneCountInString(word)]++
	}
	out := make([]LengthBucket, 0, len(counts))
	for length, count := range counts {
		out = append(out, LengthBucket{Length: length, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Length > out[j].Length
	})
	return out
}

// RenderLengthHistogram prints one bar per word length. A width of 0 uses the
// terminal width.
func RenderLengthHistogram(w io.Writer, words []string, width int) error {
	buckets := LengthBuckets(words)
	if len(buckets) == 0 {
		return nil
	}
	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	labelWidth := len(strconv.Itoa(buckets[0].Length))
	countWidth := len(strconv.Itoa(maxCount))
	if width <= 0 {
		width = terminalWidth()
	}
	barWidth := BarWidthFor(width, labelWidth, countWidth)
	useColor := shouldUseColor(w)

	if _, err := fmt.Fprintln(w, "Lengths"); err != nil {
		return err
	}
	for _, b := range buckets {
		n := b.Count * barWidth / maxCount
		if n == 0 {
			n = 1
		}
		bar := strings.Repeat(barChar, n)
		if useColor {
			bar = colorBar + bar + colorReset
		}
		if _, err := fmt.Fprintf(w, "%*d │ %s %*d\n", labelWidth, b.Length, bar, countWidth, b.Count); err != nil {
			return err
		}
	}
	return nil
}

// BarWidthFor returns the room left for bars once labels and counts are placed.
func BarWidthFor(totalWidth, labelWidth, countWidth int) int {
	barWidth := totalWidth - labelWidth - countWidth - 4
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	return barWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
