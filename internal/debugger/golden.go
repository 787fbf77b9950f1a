package debugger

import (
	"fmt"
	"strings"
)

// FormatGolden renders a report into a stable, single-line-per-entry
// representation suitable for golden files and the CLI short format. Order is
// fully determined by the report (pathway priority order, step order), so no
// sorting is needed.
func FormatGolden(rep *Report, includeNotes bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "default %s\n", rep.Default)
	for _, pw := range rep.Pathways() {
		fmt.Fprintf(&b, "progress %s %d/%d\n", pw.Pathway, pw.Progress.Satisfied, pw.Progress.Total)
	}
	for _, pw := range rep.Pathways() {
		for i, c := range pw.Checks {
			code := "-"
			if c.Code != UnknownCode {
				code = c.Code.ID()
			}
			text := sanitizeMessage(c.Message)
			if text == "" {
				text = c.Step.Title()
			}
			fmt.Fprintf(&b, "%s %s %s:%d %s\n", c.Status, code, pw.Pathway, i+1, text)
			if !includeNotes {
				continue
			}
			for _, note := range c.Notes {
				fmt.Fprintf(&b, "note %s %s:%d %s\n", code, pw.Pathway, i+1, sanitizeMessage(note))
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
