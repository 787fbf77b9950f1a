package report

import (
	"encoding/json"
	"io"

	"smdoctor/internal/debugger"
)

// CheckJSON представляет одну запись чеклиста для JSON.
type CheckJSON struct {
	Step     string   `json:"step"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message,omitempty"`
	Notes    []string `json:"notes,omitempty"`
	SwitchTo string   `json:"switch_to,omitempty"`
}

// PathwayJSON представляет один pathway для JSON.
type PathwayJSON struct {
	Pathway   string      `json:"pathway"`
	Title     string      `json:"title"`
	Satisfied uint8       `json:"satisfied"`
	Total     uint8       `json:"total"`
	Fraction  float64     `json:"fraction"`
	Checks    []CheckJSON `json:"checks"`
}

// ReportOutput представляет корневую структуру JSON вывода.
type ReportOutput struct {
	Default  string        `json:"default_pathway"`
	Pathways []PathwayJSON `json:"pathways"`
}

// BuildReportOutput формирует структуру JSON-вывода без сериализации.
func BuildReportOutput(rep *debugger.Report, opts JSONOpts) ReportOutput {
	out := ReportOutput{
		Default:  rep.Default.String(),
		Pathways: make([]PathwayJSON, 0, 3),
	}
	for _, pw := range rep.Pathways() {
		pj := PathwayJSON{
			Pathway:   pw.Pathway.String(),
			Title:     pw.Pathway.Title(),
			Satisfied: pw.Progress.Satisfied,
			Total:     pw.Progress.Total,
			Fraction:  pw.Progress.Fraction(),
			Checks:    make([]CheckJSON, 0, len(pw.Checks)),
		}
		for _, c := range pw.Checks {
			cj := CheckJSON{
				Step:    c.Step.String(),
				Title:   c.Step.Title(),
				Status:  c.Status.String(),
				Message: c.Message,
			}
			if c.Code != debugger.UnknownCode {
				cj.Code = c.Code.ID()
			}
			if opts.IncludeNotes {
				cj.Notes = c.Notes
			}
			if c.SwitchTo != nil {
				cj.SwitchTo = c.SwitchTo.String()
			}
			pj.Checks = append(pj.Checks, cj)
		}
		out.Pathways = append(out.Pathways, pj)
	}
	return out
}

// JSON сериализует отчёт в JSON.
func JSON(w io.Writer, rep *debugger.Report, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(BuildReportOutput(rep, opts))
}
