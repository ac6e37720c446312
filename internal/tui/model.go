// Package tui provides the Bubble Tea anagram explorer.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lexigram/internal/anagram"
	"github.com/verte-zerg/lexigram/internal/letters"
	"github.com/verte-zerg/lexigram/internal/model"
	"github.com/verte-zerg/lexigram/internal/rank"
	"github.com/verte-zerg/lexigram/internal/score"
	"github.com/verte-zerg/lexigram/internal/stats"
)

const (
	focusInput = iota
	focusTable
)

// Store persists favorites and search history for the explorer.
type Store interface {
	AddHistory(ctx context.Context, word string, at time.Time, limit int) error
	FavoriteSet(ctx context.Context) (map[string]bool, error)
	AddFavorite(ctx context.Context, word string, at time.Time) error
	RemoveFavorite(ctx context.Context, word string) error
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea explorer UI.
type Model struct {
	config    model.Config
	store     Store
	finder    anagram.Finder
	words     []string
	wordOfDay string

	input     textinput.Model
	table     table.Model
	focus     int
	criterion rank.Criterion
	desc      bool

	lastInput string
	found     []string
	results   []string
	favorites map[string]bool
	errMsg    string

	width  int
	height int
}

// NewModel constructs an explorer over words.
func NewModel(cfg model.Config, st Store, words []string, wordOfDay string) (*Model, error) {
	alphabet, err := letters.ParseAlphabet(cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	criterion := rank.Length
	if cfg.Sort != "" {
		criterion, err = rank.ParseCriterion(cfg.Sort)
		if err != nil {
			return nil, err
		}
	}
	m := &Model{
		config:    cfg,
		store:     st,
		finder:    anagram.Finder{Alphabet: alphabet},
		words:     words,
		wordOfDay: wordOfDay,
		criterion: criterion,
		desc:      cfg.Desc,
		favorites: map[string]bool{},
	}
	m.input = newLettersInput()
	m.table = buildResultTable(0, 1)
	m.loadFavorites()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		m.search(m.input.Value())
		if len(m.results) > 0 {
			return m, m.focusTable()
		}
		return m, nil
	case "tab":
		if len(m.results) == 0 {
			return m, nil
		}
		return m, m.focusTable()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "tab", "/":
		return m, m.focusInput()
	case "s":
		m.criterion = m.criterion.Next()
		m.applySort()
		return m, nil
	case "r":
		m.desc = !m.desc
		m.applySort()
		return m, nil
	case "f":
		m.toggleFavorite()
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	m.table.Blur()
	return m.input.Focus()
}

func (m *Model) focusTable() tea.Cmd {
	m.focus = focusTable
	m.input.Blur()
	m.table.Focus()
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	header := titleStyle.Render("lexigram") + "  " + m.input.View()
	body := m.renderBody()
	footer := m.renderFooter()
	if m.height <= 0 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := maxInt(1, m.height-footerHeight-2)
	return strings.Join([]string{
		fitLines(header, width, 1),
		fitLines("", width, 1),
		fitLines(body, width, bodyHeight),
		fitLines(footer, width, footerHeight),
	}, "\n")
}

func (m *Model) renderBody() string {
	if m.lastInput == "" {
		return headerStyle.Render("Type some letters and press enter.")
	}
	if len(m.results) == 0 {
		return fmt.Sprintf("No words found for %q.", m.lastInput)
	}
	tableView := tableMutedStyle.Render(m.table.View())
	panel := m.renderStatsPanel()
	if panel == "" {
		return tableView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", panel)
}

func (m *Model) renderStatsPanel() string {
	word := m.selectedWord()
	if word == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := stats.RenderWordStats(&buf, word, stats.Compute(word)); err != nil {
		return ""
	}
	return cardStyle.Render(strings.TrimRight(buf.String(), "\n"))
}

func (m *Model) renderFooter() string {
	order := "asc"
	if m.desc {
		order = "desc"
	}
	segments := []string{
		fmt.Sprintf("%d words", len(m.results)),
		fmt.Sprintf("Sort %s (%s)", m.criterion, order),
	}
	if m.wordOfDay != "" {
		segments = append(segments, fmt.Sprintf("Word of the day: %s", m.wordOfDay))
	}
	lines := []string{footerStyle.Render(strings.Join(segments, "  ")), headerStyle.Render(m.renderHelp())}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	if m.focus == focusTable {
		return "Sort: s  Reverse: r  Favorite: f  Edit letters: tab  Quit: q"
	}
	return "Search: enter  Results: tab  Quit: esc"
}

func (m *Model) search(input string) {
	input = strings.TrimSpace(input)
	m.lastInput = input
	m.errMsg = ""
	if input == "" {
		m.found = nil
		m.setResults(nil)
		return
	}
	res := m.finder.Find(input, m.words, m.config.MinLength)
	m.found = res.Words
	m.applySort()
	m.table.SetCursor(0)

	if m.store == nil {
		return
	}
	if err := m.store.AddHistory(context.Background(), input, time.Now(), m.config.HistorySize); err != nil {
		m.errMsg = fmt.Sprintf("failed to save history: %v", err)
		logErrf("failed to save history: %v\n", err)
	}
}

func (m *Model) applySort() {
	var (
		sorted []string
		err    error
	)
	if m.desc {
		sorted, err = rank.SortDesc(m.found, m.criterion)
	} else {
		sorted, err = rank.Sort(m.found, m.criterion)
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.setResults(sorted)
}

func (m *Model) setResults(words []string) {
	m.results = words
	m.table.SetRows(buildRows(words, m.favorites))
}

func (m *Model) selectedWord() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.results) {
		return ""
	}
	return m.results[idx]
}

func (m *Model) toggleFavorite() {
	word := m.selectedWord()
	if word == "" {
		return
	}
	ctx := context.Background()
	if m.favorites[word] {
		if m.store != nil {
			if err := m.store.RemoveFavorite(ctx, word); err != nil {
				m.errMsg = fmt.Sprintf("failed to remove favorite: %v", err)
				return
			}
		}
		delete(m.favorites, word)
	} else {
		if m.store != nil {
			if err := m.store.AddFavorite(ctx, word, time.Now()); err != nil {
				m.errMsg = fmt.Sprintf("failed to add favorite: %v", err)
				return
			}
		}
		m.favorites[word] = true
	}
	m.errMsg = ""
	m.table.SetRows(buildRows(m.results, m.favorites))
}

func (m *Model) loadFavorites() {
	if m.store == nil {
		return
	}
	set, err := m.store.FavoriteSet(context.Background())
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load favorites: %v", err)
		logErrf("failed to load favorites: %v\n", err)
		return
	}
	if set != nil {
		m.favorites = set
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.Width = maxInt(10, m.width-lipgloss.Width(m.input.Prompt)-len("lexigram")-4)
	m.table.SetHeight(maxInt(1, m.height-8))
}

func newLettersInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Letters: "
	input.Placeholder = "arts"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func buildResultTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Word", Width: 18},
		{Title: "Len", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Difficulty", Width: 10},
		{Title: "", Width: 2},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(maxInt(1, height)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	t.SetStyles(resultTableStyles())
	return t
}

func buildRows(words []string, favorites map[string]bool) []table.Row {
	rows := make([]table.Row, 0, len(words))
	for _, word := range words {
		mark := ""
		if favorites[word] {
			mark = "*"
		}
		rows = append(rows, table.Row{
			truncateLine(word, 18),
			strconv.Itoa(len([]rune(word))),
			strconv.Itoa(score.Scrabble(word)),
			strconv.Itoa(int(score.Difficulty(word))),
			mark,
		})
	}
	return rows
}

func resultTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
