package debugger

import (
	"reflect"
	"testing"

	"smdoctor/internal/facts"
)

func TestBuildReportShape(t *testing.T) {
	f := saturatedBundle()
	rep := Build(f)

	if len(rep.DebugIDs.Checks) != 4 {
		t.Fatalf("expected 4 debug-id checks, got %d", len(rep.DebugIDs.Checks))
	}
	if len(rep.Release.Checks) != 4 {
		t.Fatalf("expected 4 release checks, got %d", len(rep.Release.Checks))
	}
	if len(rep.Scraping.Checks) != 2 {
		t.Fatalf("expected 2 scraping checks, got %d", len(rep.Scraping.Checks))
	}
	if rep.Default != PathwayDebugIDs {
		t.Fatalf("saturated bundle should default to debug-ids, got %s", rep.Default)
	}
}

func TestBuildDefaultFollowsProgress(t *testing.T) {
	f := &facts.Bundle{
		ReleaseName:                         "frontend@1.2.3",
		UploadedSomeArtifactToRelease:       true,
		StackFramePath:                      "https://example.com/app.js",
		MatchingArtifactName:                "~/app.js",
		SourceFileReleaseNameFetchingResult: facts.FetchFound,
		ReleaseSourceMapReference:           "app.js.map",
		SourceMapReleaseNameFetchingResult:  facts.FetchFound,
	}

	rep := Build(f)
	if rep.Default != PathwayRelease {
		t.Fatalf("expected release default, got %s", rep.Default)
	}
	if rep.Release.Progress.Satisfied != 4 {
		t.Fatalf("expected release progress 4, got %d", rep.Release.Progress.Satisfied)
	}
}

func TestBuildDoesNotMutateBundle(t *testing.T) {
	f := saturatedBundle()
	snapshot := *f

	_ = Build(f)

	if !reflect.DeepEqual(snapshot, *f) {
		t.Fatalf("Build mutated the bundle")
	}
}

func TestByPathway(t *testing.T) {
	rep := Build(saturatedBundle())

	for _, p := range []Pathway{PathwayDebugIDs, PathwayRelease, PathwayScraping} {
		if got := rep.ByPathway(p); got.Pathway != p {
			t.Fatalf("ByPathway(%s) returned %s", p, got.Pathway)
		}
	}
}

func TestPathwayReportAlerts(t *testing.T) {
	f := &facts.Bundle{
		SourceFileReleaseNameFetchingResult: facts.FetchUnsuccessful,
		SourceMapReleaseNameFetchingResult:  facts.FetchUnsuccessful,
	}

	rep := Build(f)
	// Release checklist: step 5 alerts, 6-8 gated out.
	if got := rep.Release.Alerts(); got != 1 {
		t.Fatalf("expected 1 release alert, got %d", got)
	}
}
