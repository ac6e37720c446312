package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/lexigram/internal/model"
	"github.com/verte-zerg/lexigram/internal/rank"
)

type fakeStore struct {
	history    []string
	limits     []int
	favorites  map[string]bool
	historyErr error
}

func (f *fakeStore) AddHistory(_ context.Context, word string, _ time.Time, limit int) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	f.history = append(f.history, word)
	f.limits = append(f.limits, limit)
	return nil
}

func (f *fakeStore) FavoriteSet(context.Context) (map[string]bool, error) {
	out := map[string]bool{}
	for k, v := range f.favorites {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) AddFavorite(_ context.Context, word string, _ time.Time) error {
	f.favorites[word] = true
	return nil
}

func (f *fakeStore) RemoveFavorite(_ context.Context, word string) error {
	delete(f.favorites, word)
	return nil
}

var testWords = []string{"arts", "rats", "star", "tsar", "art", "rat", "tar", "sat", "at", "zebra"}

func newTestModel(t *testing.T, cfg model.Config, st Store) *Model {
	t.Helper()
	if cfg.MinLength == 0 {
		cfg.MinLength = 1
	}
	m, err := NewModel(cfg, st, testWords, "puzzle")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelRejectsBadSettings(t *testing.T) {
	if _, err := NewModel(model.Config{Alphabet: "klingon"}, nil, nil, ""); err == nil {
		t.Fatalf("expected alphabet error")
	}
	_, err := NewModel(model.Config{Sort: "vibes"}, nil, nil, "")
	if !errors.Is(err, rank.ErrUnknownCriterion) {
		t.Fatalf("expected unknown criterion, got %v", err)
	}
}

func TestSearchRecordsHistoryAndSorts(t *testing.T) {
	st := &fakeStore{favorites: map[string]bool{}}
	m := newTestModel(t, model.Config{MinLength: 3, HistorySize: 5}, st)

	m.input.SetValue("arts")
	m.Update(key("enter"))

	want := []string{"art", "rat", "tar", "sat", "arts", "rats", "star", "tsar"}
	if diff := cmp.Diff(want, m.results); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"arts"}, st.history); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}
	if st.limits[0] != 5 {
		t.Fatalf("expected history limit 5, got %d", st.limits[0])
	}
	if m.focus != focusTable {
		t.Fatalf("expected table focus after a search with results")
	}

	m.Update(key("r"))
	if m.results[0] != "arts" || m.results[len(m.results)-1] != "sat" {
		t.Fatalf("unexpected reversed order: %v", m.results)
	}

	m.Update(key("s"))
	if m.criterion != rank.Difficulty {
		t.Fatalf("expected difficulty after length, got %s", m.criterion)
	}
	if len(m.results) != len(want) {
		t.Fatalf("sorting changed result size: %v", m.results)
	}
}

func TestSearchWithoutResultsKeepsInputFocus(t *testing.T) {
	m := newTestModel(t, model.Config{}, nil)
	m.input.SetValue("qqq")
	m.Update(key("enter"))
	if m.focus != focusInput {
		t.Fatalf("expected input focus")
	}
	if !strings.Contains(m.View(), `No words found for "qqq".`) {
		t.Fatalf("expected empty message, got %s", m.View())
	}
}

func TestToggleFavorite(t *testing.T) {
	st := &fakeStore{favorites: map[string]bool{"rats": true}}
	m := newTestModel(t, model.Config{MinLength: 4, Sort: "alpha"}, st)
	m.input.SetValue("star")
	m.Update(key("enter"))

	if got := m.selectedWord(); got != "arts" {
		t.Fatalf("expected arts selected, got %q", got)
	}
	m.Update(key("f"))
	if !st.favorites["arts"] || !m.favorites["arts"] {
		t.Fatalf("expected arts to be a favorite")
	}
	m.Update(key("f"))
	if st.favorites["arts"] || m.favorites["arts"] {
		t.Fatalf("expected arts to be removed")
	}
	if !m.favorites["rats"] {
		t.Fatalf("expected stored favorite to be loaded")
	}
}

func TestHistoryErrorIsShown(t *testing.T) {
	st := &fakeStore{favorites: map[string]bool{}, historyErr: errors.New("disk full")}
	m := newTestModel(t, model.Config{}, st)
	m.search("at")
	if !strings.Contains(m.renderFooter(), "disk full") {
		t.Fatalf("expected error in footer: %s", m.renderFooter())
	}
	if len(m.results) == 0 {
		t.Fatalf("expected results despite history error")
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(t, model.Config{}, nil)
	m.results = []string{"a", "b", "c"}
	m.desc = true
	out := m.renderFooter()
	for _, needle := range []string{"3 words", "Sort length (desc)", "Word of the day: puzzle"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("footer missing %q: %s", needle, out)
		}
	}
}

func TestStatsPanelFollowsSelection(t *testing.T) {
	m := newTestModel(t, model.Config{MinLength: 4, Sort: "alpha"}, nil)
	m.search("arts")
	panel := m.renderStatsPanel()
	if !strings.Contains(panel, "arts") || !strings.Contains(panel, "Scrabble score") {
		t.Fatalf("unexpected panel: %s", panel)
	}
}

func TestFitLines(t *testing.T) {
	got := fitLines("ab\ncd\nef", 4, 2)
	if got != "ab  \ncd  " {
		t.Fatalf("unexpected fit: %q", got)
	}
	if got := fitLines("x", 2, 3); got != "x \n  \n  " {
		t.Fatalf("unexpected fill: %q", got)
	}
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncateLine("abc", 6); got != "abc" {
		t.Fatalf("unexpected truncate: %q", got)
	}
}
