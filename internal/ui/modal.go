package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"smdoctor/internal/debugger"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	checkedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	alertStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	questionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	switchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	cursorStyle      = lipgloss.NewStyle().Bold(true)
)

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Notes   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Switch, k.Notes, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.Up, k.Down},
		{k.Switch, k.Notes, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pathway"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous pathway"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "previous step"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "next step"),
		),
		Switch: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "follow suggestion"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle notes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// Model is the interactive modal over one derived report. The active pathway
// tab starts at the report's default selection and belongs to the user
// afterwards; the engine is never re-consulted.
type Model struct {
	report    *debugger.Report
	active    debugger.Pathway
	cursor    int
	showNotes bool
	prog      progress.Model
	keys      keyMap
	help      help.Model
	width     int
}

// NewModal builds the modal model for a report.
func NewModal(rep *debugger.Report) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40
	return &Model{
		report:    rep,
		active:    rep.Default,
		showNotes: true,
		prog:      prog,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
	}
}

// ActivePathway exposes the current tab, mostly for tests.
func (m *Model) ActivePathway() debugger.Pathway {
	return m.active
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = min(msg.Width-8, 60)
			m.help.Width = msg.Width
		}
		return m, nil
	case progress.FrameMsg:
		model, cmd := m.prog.Update(msg)
		m.prog = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.setActive(nextPathway(m.active))
	case key.Matches(msg, m.keys.PrevTab):
		m.setActive(prevPathway(m.active))
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.currentChecks())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Notes):
		m.showNotes = !m.showNotes
	case key.Matches(msg, m.keys.Switch):
		// Switching pathways is an explicit user action on a suggestion,
		// never something the engine does on its own.
		if target := m.selectedSwitch(); target != nil {
			m.setActive(*target)
		}
	case msg.String() == "1":
		m.setActive(debugger.PathwayDebugIDs)
	case msg.String() == "2":
		m.setActive(debugger.PathwayRelease)
	case msg.String() == "3":
		m.setActive(debugger.PathwayScraping)
	}
	return m, nil
}

func (m *Model) setActive(p debugger.Pathway) {
	if p != m.active {
		m.active = p
		m.cursor = 0
	}
}

func (m *Model) currentChecks() []debugger.Check {
	return m.report.ByPathway(m.active).Checks
}

func (m *Model) selectedSwitch() *debugger.Pathway {
	checks := m.currentChecks()
	if m.cursor < 0 || m.cursor >= len(checks) {
		return nil
	}
	return checks[m.cursor].SwitchTo
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Why are my source maps not working?"))
	b.WriteString("\n\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	pw := m.report.ByPathway(m.active)
	b.WriteString(fmt.Sprintf("  %s %d/%d\n\n", m.prog.ViewAs(pw.Progress.Fraction()), pw.Progress.Satisfied, pw.Progress.Total))

	for i, c := range pw.Checks {
		b.WriteString(m.renderCheck(c, i == m.cursor))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) tabBar() string {
	tabs := make([]string, 0, 3)
	for _, pw := range m.report.Pathways() {
		label := fmt.Sprintf("%s (%d%%)", pw.Pathway.Title(), pw.Progress.Percent())
		if pw.Pathway == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return "  " + strings.Join(tabs, "  |  ")
}

func (m *Model) renderCheck(c debugger.Check, selected bool) string {
	var b strings.Builder

	glyph := statusGlyph(c.Status)
	title := truncate(c.Step.Title(), m.width-8)
	line := fmt.Sprintf("  %s %s", glyph, title)
	if selected {
		line = cursorStyle.Render("›" + line[1:])
	}
	b.WriteString(line)
	b.WriteString("\n")

	if c.Message != "" {
		b.WriteString(mutedStyle.Render("      " + truncate(c.Message, m.width-8)))
		b.WriteString("\n")
	}
	if c.SwitchTo != nil {
		b.WriteString(switchStyle.Render(fmt.Sprintf("      press s to open the %s pathway", c.SwitchTo.Title())))
		b.WriteString("\n")
	}
	if m.showNotes {
		for _, note := range c.Notes {
			b.WriteString(mutedStyle.Render("      note: " + truncate(note, m.width-12)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func statusGlyph(s debugger.CheckStatus) string {
	switch s {
	case debugger.StatusChecked:
		return checkedStyle.Render("✓")
	case debugger.StatusAlert:
		return alertStyle.Render("✗")
	case debugger.StatusQuestion:
		return questionStyle.Render("?")
	}
	return mutedStyle.Render("○")
}

func nextPathway(p debugger.Pathway) debugger.Pathway {
	switch p {
	case debugger.PathwayDebugIDs:
		return debugger.PathwayRelease
	case debugger.PathwayRelease:
		return debugger.PathwayScraping
	}
	return debugger.PathwayDebugIDs
}

func prevPathway(p debugger.Pathway) debugger.Pathway {
	switch p {
	case debugger.PathwayScraping:
		return debugger.PathwayRelease
	case debugger.PathwayRelease:
		return debugger.PathwayDebugIDs
	}
	return debugger.PathwayScraping
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
