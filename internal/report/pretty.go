package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"smdoctor/internal/debugger"
)

const progressBarWidth = 20

// Pretty renders the report as a per-pathway checklist. The default pathway
// is printed first and marked; within a pathway the checks keep their
// dependency order.
func Pretty(w io.Writer, rep *debugger.Report, opts PrettyOpts) {
	pathways := orderForDisplay(rep)

	for i, pw := range pathways {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printPathway(w, pw, pw.Pathway == rep.Default, opts)
	}
}

// orderForDisplay puts the default pathway first, keeping priority order for
// the rest.
func orderForDisplay(rep *debugger.Report) []debugger.PathwayReport {
	ordered := make([]debugger.PathwayReport, 0, 3)
	ordered = append(ordered, rep.ByPathway(rep.Default))
	for _, pw := range rep.Pathways() {
		if pw.Pathway != rep.Default {
			ordered = append(ordered, pw)
		}
	}
	return ordered
}

func printPathway(w io.Writer, pw debugger.PathwayReport, isDefault bool, opts PrettyOpts) {
	header := fmt.Sprintf("== %s — %d/%d ==", pw.Pathway.Title(), pw.Progress.Satisfied, pw.Progress.Total)
	if isDefault {
		header += " (selected)"
	}
	fmt.Fprintln(w, paint(opts.Color, color.Bold, header))
	fmt.Fprintf(w, "  %s %3d%%\n", progressBar(pw.Progress), pw.Progress.Percent())

	for _, c := range pw.Checks {
		printCheck(w, c, opts)
	}
}

func printCheck(w io.Writer, c debugger.Check, opts PrettyOpts) {
	title := c.Step.Title()
	if opts.Width > 0 {
		title = truncate(title, opts.Width-6)
	}

	line := fmt.Sprintf("  %s %s", statusGlyph(c.Status, opts.Color), title)
	if c.Code != debugger.UnknownCode {
		line += " " + paint(opts.Color, color.Faint, "["+c.Code.ID()+"]")
	}
	fmt.Fprintln(w, line)

	if c.Message != "" {
		fmt.Fprintf(w, "      %s\n", c.Message)
	}
	if c.SwitchTo != nil {
		fmt.Fprintf(w, "      %s\n", paint(opts.Color, color.FgCyan, "consider the "+c.SwitchTo.Title()+" pathway instead"))
	}
	if opts.ShowNotes {
		for _, note := range c.Notes {
			fmt.Fprintf(w, "      %s\n", paint(opts.Color, color.Faint, "note: "+note))
		}
	}
}

func statusGlyph(s debugger.CheckStatus, colorize bool) string {
	switch s {
	case debugger.StatusChecked:
		return paint(colorize, color.FgGreen, "✓")
	case debugger.StatusAlert:
		return paint(colorize, color.FgRed, "✗")
	case debugger.StatusQuestion:
		return paint(colorize, color.FgYellow, "?")
	}
	return paint(colorize, color.Faint, "○")
}

func progressBar(p debugger.Progress) string {
	filled := 0
	if p.Total > 0 {
		filled = int(p.Satisfied) * progressBarWidth / int(p.Total)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled) + "]"
}

func paint(colorize bool, attr color.Attribute, s string) string {
	if !colorize {
		return s
	}
	return color.New(attr).Sprint(s)
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
