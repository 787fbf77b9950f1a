package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"smdoctor/internal/debugger"
	"smdoctor/internal/facts"
)

func sampleBundle() *facts.Bundle {
	return &facts.Bundle{
		SDKDebugIDSupport:                   facts.SDKSupportNeedsUpgrade,
		SDKVersion:                          "7.10.0",
		SourceFileReleaseNameFetchingResult: facts.FetchUnsuccessful,
		SourceMapReleaseNameFetchingResult:  facts.FetchUnsuccessful,
	}
}

func TestBuildReportOutput(t *testing.T) {
	rep := debugger.Build(sampleBundle())
	out := BuildReportOutput(rep, JSONOpts{IncludeNotes: true})

	if out.Default != "debug-ids" {
		t.Fatalf("expected default debug-ids, got %q", out.Default)
	}
	if len(out.Pathways) != 3 {
		t.Fatalf("expected 3 pathways, got %d", len(out.Pathways))
	}
	if out.Pathways[0].Pathway != "debug-ids" || out.Pathways[1].Pathway != "release" || out.Pathways[2].Pathway != "fetching" {
		t.Fatalf("pathways out of priority order: %v", out.Pathways)
	}

	first := out.Pathways[0].Checks[0]
	if first.Status != "alert" || first.Code != "DBG1001" {
		t.Fatalf("expected alert DBG1001, got %s %s", first.Status, first.Code)
	}
	if first.SwitchTo != "release" {
		t.Fatalf("expected switch suggestion to release, got %q", first.SwitchTo)
	}

	gated := out.Pathways[0].Checks[1]
	if gated.Status != "none" || gated.Code != "" || gated.Message != "" {
		t.Fatalf("gated check should be bare: %+v", gated)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	rep := debugger.Build(sampleBundle())

	var buf bytes.Buffer
	if err := JSON(&buf, rep, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded ReportOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Default != "debug-ids" {
		t.Fatalf("expected default debug-ids, got %q", decoded.Default)
	}
}

func TestJSONNotesToggle(t *testing.T) {
	rep := debugger.Build(sampleBundle())

	withNotes := BuildReportOutput(rep, JSONOpts{IncludeNotes: true})
	without := BuildReportOutput(rep, JSONOpts{})

	// Step 1 of debug-ids carries a note about the release pathway.
	if len(withNotes.Pathways[0].Checks[0].Notes) == 0 {
		t.Fatalf("expected notes when IncludeNotes is set")
	}
	if len(without.Pathways[0].Checks[0].Notes) != 0 {
		t.Fatalf("expected no notes by default")
	}
}
