package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"smdoctor/internal/debugger"
	"smdoctor/internal/ui"
)

// runExplainUI shows the interactive checklist modal for a single report.
func runExplainUI(rep *debugger.Report) error {
	if rep == nil {
		return fmt.Errorf("missing report")
	}
	model := ui.NewModal(rep)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run checklist UI: %w", err)
	}
	return nil
}
