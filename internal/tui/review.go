// Package tui is the interactive admin review surface: pick unknown tokens,
// pick the canonical team they meant, and commit the correction to the
// learning store.
package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/report"
)

type focusArea int

const (
	focusTokens focusArea = iota
	focusTeams
)

// appliedMsg reports the outcome of one ApplyCorrection call.
type appliedMsg struct {
	count  int
	target string
	err    error
}

type model struct {
	store *learn.Store
	db    *report.DB

	tokens   []report.UnknownCount
	selected map[string]bool
	cursor   int
	offset   int

	teams      []string
	teamCursor int

	focus    focusArea
	status   string
	statusOK bool
	width    int
	height   int
	applied  int
}

func initialModel(store *learn.Store, db *report.DB, tokens []report.UnknownCount, teams []string) model {
	return model{
		store:    store,
		db:       db,
		tokens:   tokens,
		selected: make(map[string]bool),
		teams:    teams,
		status:   "space: select tokens · tab: team panel · enter: apply",
	}
}

// Run starts the review TUI and blocks until it exits. It returns the number
// of corrections committed.
func Run(store *learn.Store, db *report.DB, tokens []report.UnknownCount, teams []string) (int, error) {
	m := initialModel(store, db, tokens, teams)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	return finalModel.(model).applied, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.statusOK = false
			return m, nil
		}
		m.applied += msg.count
		m.status = fmt.Sprintf("Saved %d mappings -> %s", msg.count, msg.target)
		m.statusOK = true
		m.removeSelected()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Switch):
			if m.focus == focusTokens {
				m.focus = focusTeams
			} else {
				m.focus = focusTokens
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			m.move(-1)
			return m, nil

		case key.Matches(msg, keys.Down):
			m.move(1)
			return m, nil

		case key.Matches(msg, keys.Toggle):
			if m.focus == focusTokens && m.cursor < len(m.tokens) {
				tok := m.tokens[m.cursor].Token
				m.selected[tok] = !m.selected[tok]
			}
			return m, nil

		case key.Matches(msg, keys.Yank):
			if m.focus == focusTokens && m.cursor < len(m.tokens) {
				tok := m.tokens[m.cursor].Token
				if err := clipboard.WriteAll(tok); err == nil {
					m.status = fmt.Sprintf("copied %q", tok)
					m.statusOK = true
				}
			}
			return m, nil

		case key.Matches(msg, keys.Apply):
			return m, m.applyCmd()
		}
	}
	return m, nil
}

func (m *model) move(delta int) {
	if m.focus == focusTokens {
		m.cursor = clamp(m.cursor+delta, 0, len(m.tokens)-1)
		m.adjustScroll()
	} else {
		m.teamCursor = clamp(m.teamCursor+delta, 0, len(m.teams)-1)
	}
}

func (m *model) adjustScroll() {
	h := m.panelHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m model) selection() []string {
	var out []string
	for _, t := range m.tokens {
		if m.selected[t.Token] {
			out = append(out, t.Token)
		}
	}
	return out
}

// applyCmd commits the current selection to the learning store and clears
// the learned tokens from the stored worklist.
func (m model) applyCmd() tea.Cmd {
	raws := m.selection()
	target := ""
	if m.teamCursor < len(m.teams) {
		target = m.teams[m.teamCursor]
	}

	return func() tea.Msg {
		if len(raws) == 0 {
			return appliedMsg{err: learn.ErrNoSelection}
		}
		n, err := m.store.ApplyCorrection(raws, target)
		if err != nil {
			return appliedMsg{err: err}
		}
		if m.db != nil {
			if err := m.db.ClearUnknownTokens(raws); err != nil {
				return appliedMsg{err: err}
			}
		}
		return appliedMsg{count: n, target: target}
	}
}

func (m *model) removeSelected() {
	var kept []report.UnknownCount
	for _, t := range m.tokens {
		if !m.selected[t.Token] {
			kept = append(kept, t)
		}
	}
	m.tokens = kept
	m.selected = make(map[string]bool)
	m.cursor = clamp(m.cursor, 0, len(m.tokens)-1)
	m.adjustScroll()
}

func (m model) panelHeight() int {
	// borders (2) + title (1) + status bar (1)
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	left := m.tokenPanel()
	right := m.teamPanel()
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := styleStatusBar.Render(m.status)
	if m.statusOK {
		status = styleStatusOK.Render(m.status)
	}
	return panels + "\n" + status
}

func (m model) tokenPanel() string {
	h := m.panelHeight()
	w := m.width/2 - 2

	var lines []string
	lines = append(lines, styleTitle.Render(fmt.Sprintf("Unknown tokens (%d)", len(m.tokens))))

	end := min(m.offset+h, len(m.tokens))
	for i := m.offset; i < end; i++ {
		t := m.tokens[i]
		mark := "[ ]"
		style := styleNormal
		if m.selected[t.Token] {
			mark = "[x]"
			style = styleSelected
		}
		line := fmt.Sprintf("%s %s %s", mark, style.Render(t.Token), styleCount.Render(fmt.Sprintf("x%d", t.Count)))
		if i == m.cursor && m.focus == focusTokens {
			line = styleCursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.tokens) == 0 {
		lines = append(lines, styleCount.Render("(worklist empty)"))
	}

	border := stylePanelBorder
	if m.focus == focusTokens {
		border = styleActiveBorder
	}
	return border.Width(w).Height(h + 1).Render(joinLines(lines))
}

func (m model) teamPanel() string {
	h := m.panelHeight()
	w := m.width - m.width/2 - 2

	var lines []string
	lines = append(lines, styleTitle.Render("Canonical team"))

	start := clamp(m.teamCursor-h/2, 0, max(len(m.teams)-h, 0))
	end := min(start+h, len(m.teams))
	for i := start; i < end; i++ {
		line := styleNormal.Render(m.teams[i])
		if i == m.teamCursor {
			if m.focus == focusTeams {
				line = styleCursor.Render("> " + m.teams[i])
			} else {
				line = styleSelected.Render("* " + m.teams[i])
			}
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	border := stylePanelBorder
	if m.focus == focusTeams {
		border = styleActiveBorder
	}
	return border.Width(w).Height(h + 1).Render(joinLines(lines))
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
