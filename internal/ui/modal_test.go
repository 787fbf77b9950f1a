package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"smdoctor/internal/debugger"
	"smdoctor/internal/facts"
)

func modalReport(t *testing.T) *debugger.Report {
	t.Helper()
	f := &facts.Bundle{
		SDKDebugIDSupport: facts.SDKSupportNeedsUpgrade,
		SDKVersion:        "7.40.0",
		ReleaseName:       "frontend@1.2.3",

		SourceFileReleaseNameFetchingResult: facts.FetchUnsuccessful,
		SourceMapReleaseNameFetchingResult:  facts.FetchUnsuccessful,
	}
	return debugger.Build(f)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModalStartsOnDefaultPathway(t *testing.T) {
	rep := modalReport(t)
	m := NewModal(rep)
	if m.ActivePathway() != rep.Default {
		t.Fatalf("active pathway = %v, want default %v", m.ActivePathway(), rep.Default)
	}
}

func TestModalTabCycling(t *testing.T) {
	m := NewModal(modalReport(t))
	start := m.ActivePathway()
	for i := 0; i < 3; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = model.(*Model)
	}
	if m.ActivePathway() != start {
		t.Fatalf("three tab presses should cycle back to %v, got %v", start, m.ActivePathway())
	}
}

func TestModalDirectTabSelection(t *testing.T) {
	m := NewModal(modalReport(t))
	model, _ := m.Update(keyMsg("3"))
	m = model.(*Model)
	if m.ActivePathway() != debugger.PathwayScraping {
		t.Fatalf("key 3 should select scraping, got %v", m.ActivePathway())
	}
	model, _ = m.Update(keyMsg("1"))
	m = model.(*Model)
	if m.ActivePathway() != debugger.PathwayDebugIDs {
		t.Fatalf("key 1 should select debug-ids, got %v", m.ActivePathway())
	}
}

func TestModalFollowSwitchSuggestion(t *testing.T) {
	rep := modalReport(t)
	m := NewModal(rep)
	model, _ := m.Update(keyMsg("1"))
	m = model.(*Model)

	// Первый шаг ветки debug-ids here is an alert that suggests releases.
	first := rep.DebugIDs.Checks[0]
	if first.SwitchTo == nil || *first.SwitchTo != debugger.PathwayRelease {
		t.Fatalf("fixture should suggest the release pathway, got %+v", first)
	}

	model, _ = m.Update(keyMsg("s"))
	m = model.(*Model)
	if m.ActivePathway() != debugger.PathwayRelease {
		t.Fatalf("s should follow the suggestion to release, got %v", m.ActivePathway())
	}
}

func TestModalViewListsSteps(t *testing.T) {
	rep := modalReport(t)
	m := NewModal(rep)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = model.(*Model)

	view := m.View()
	for _, c := range rep.ByPathway(rep.Default).Checks {
		if !strings.Contains(view, c.Step.Title()) {
			t.Fatalf("view missing step title %q:\n%s", c.Step.Title(), view)
		}
	}
	if !strings.Contains(view, "pathway") {
		t.Fatalf("view missing help hints:\n%s", view)
	}
}

func TestModalQuit(t *testing.T) {
	m := NewModal(modalReport(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc should produce a quit command")
	}
}
