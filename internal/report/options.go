package report

// PrettyOpts configures human-readable rendering of a report.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Width     int // максимальная ширина строки, 0 - не ограничено
}

// JSONOpts configures JSON output of a report.
type JSONOpts struct {
	IncludeNotes bool
	Compact      bool
}
