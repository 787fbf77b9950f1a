package debugger

import (
	"strings"
	"testing"

	"smdoctor/internal/facts"
)

// saturatedBundle trips every failure ladder when gating is ignored; used to
// verify that shouldValidate=false wins over everything else.
func saturatedBundle() *facts.Bundle {
	return &facts.Bundle{
		SDKDebugIDSupport:                    facts.SDKSupportFull,
		SDKVersion:                           "9.99.0",
		StackFrameDebugID:                    "feed0000-0000-0000-0000-000000000000",
		EventHasDebugIDs:                     true,
		UploadedSomeArtifact:                 true,
		UploadedSomeArtifactWithDebugID:      true,
		UploadedSourceFileWithCorrectDebugID: true,
		UploadedSourceMapWithCorrectDebugID:  true,
		ReleaseName:                          "frontend@1.2.3",
		UploadedSomeArtifactToRelease:        true,
		DistName:                             "web",
		StackFramePath:                       "https://example.com/static/app.min.js",
		MatchingArtifactName:                 "~/static/app.min.js",
		SourceFileReleaseNameFetchingResult:  facts.FetchFound,
		ReleaseSourceMapReference:            "app.min.js.map",
		SourceMapReleaseNameFetchingResult:   facts.FetchFound,
		SourceFileScrapingStatus:             facts.ScrapingStatus{Kind: facts.ScrapeFound},
		SourceMapScrapingStatus:              facts.ScrapingStatus{Kind: facts.ScrapeFound},
	}
}

func TestGatingInvariant(t *testing.T) {
	f := saturatedBundle()

	resolvers := map[string]func(*facts.Bundle, bool) Check{
		"sdk support":          resolveSDKDebugIDSupport,
		"frame debug id":       resolveFrameDebugID,
		"uploaded source file": resolveUploadedSourceFile,
		"uploaded source map":  resolveUploadedSourceMap,
		"release set":          resolveReleaseSet,
		"release artifacts":    resolveReleaseArtifacts,
		"release source file":  resolveReleaseSourceFile,
		"release source map":   resolveReleaseSourceMap,
		"scrape source file":   resolveScrapeSourceFile,
		"scrape source map":    resolveScrapeSourceMap,
	}
	for name, resolve := range resolvers {
		if got := resolve(f, false); got.Status != StatusNone {
			t.Fatalf("%s: expected none when not validated, got %s", name, got.Status)
		}
	}
}

func TestSDKSupportChecked(t *testing.T) {
	f := &facts.Bundle{SDKDebugIDSupport: facts.SDKSupportFull}
	if got := resolveSDKDebugIDSupport(f, true); got.Status != StatusChecked {
		t.Fatalf("expected checked, got %s", got.Status)
	}

	// A frame that already carries a debug ID passes even on an odd SDK tier.
	f = &facts.Bundle{
		SDKDebugIDSupport: facts.SDKSupportUnofficial,
		StackFrameDebugID: "beef0000-0000-0000-0000-000000000000",
	}
	if got := resolveSDKDebugIDSupport(f, true); got.Status != StatusChecked {
		t.Fatalf("expected checked for frame with debug id, got %s", got.Status)
	}
}

func TestSDKSupportNeedsUpgrade(t *testing.T) {
	f := &facts.Bundle{
		SDKDebugIDSupport: facts.SDKSupportNeedsUpgrade,
		SDKVersion:        "7.10.0",
	}

	got := resolveSDKDebugIDSupport(f, true)
	if got.Status != StatusAlert {
		t.Fatalf("expected alert, got %s", got.Status)
	}
	if got.Code != DebugSDKNeedsUpgrade {
		t.Fatalf("expected %s, got %s", DebugSDKNeedsUpgrade.ID(), got.Code.ID())
	}
	if !strings.Contains(got.Message, "7.10.0") {
		t.Fatalf("message should reference the installed version: %q", got.Message)
	}
	if !strings.Contains(got.Message, MinSDKVersionForDebugIDs) {
		t.Fatalf("message should reference the target version %s: %q", MinSDKVersionForDebugIDs, got.Message)
	}
	if got.SwitchTo == nil || *got.SwitchTo != PathwayRelease {
		t.Fatalf("expected a switch suggestion to the release pathway")
	}
}

func TestSDKSupportUnofficial(t *testing.T) {
	f := &facts.Bundle{SDKDebugIDSupport: facts.SDKSupportUnofficial}

	got := resolveSDKDebugIDSupport(f, true)
	if got.Status != StatusQuestion {
		t.Fatalf("expected question, got %s", got.Status)
	}
	if got.Code != DebugSDKUnofficial {
		t.Fatalf("expected %s, got %s", DebugSDKUnofficial.ID(), got.Code.ID())
	}
	if got.SwitchTo == nil || *got.SwitchTo != PathwayRelease {
		t.Fatalf("expected a switch suggestion to the release pathway")
	}
}

func TestFrameDebugIDLadder(t *testing.T) {
	cases := []struct {
		name   string
		bundle facts.Bundle
		code   Code
	}{
		{
			"partial injection",
			facts.Bundle{EventHasDebugIDs: true, UploadedSomeArtifactWithDebugID: true},
			DebugPartialInjection,
		},
		{
			"uploaded but not deployed",
			facts.Bundle{UploadedSomeArtifactWithDebugID: true},
			DebugUploadedNotDeployed,
		},
		{
			"no tooling",
			facts.Bundle{},
			DebugNoToolingUsed,
		},
	}
	for _, tc := range cases {
		got := resolveFrameDebugID(&tc.bundle, true)
		if got.Status != StatusAlert {
			t.Fatalf("%s: expected alert, got %s", tc.name, got.Status)
		}
		if got.Code != tc.code {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.code.ID(), got.Code.ID())
		}
	}

	ok := facts.Bundle{StackFrameDebugID: "feed0000-0000-0000-0000-000000000000"}
	if got := resolveFrameDebugID(&ok, true); got.Status != StatusChecked {
		t.Fatalf("expected checked, got %s", got.Status)
	}
}

func TestUploadedSourceFileLadder(t *testing.T) {
	cases := []struct {
		name   string
		bundle facts.Bundle
		code   Code
	}{
		{
			"no matching file",
			facts.Bundle{StackFrameDebugID: "id", UploadedSomeArtifact: true, UploadedSomeArtifactWithDebugID: true},
			DebugNoMatchingSourceFile,
		},
		{
			"artifacts without debug ids",
			facts.Bundle{StackFrameDebugID: "id", UploadedSomeArtifact: true},
			DebugArtifactsWithoutDebugIDs,
		},
		{
			"nothing uploaded",
			facts.Bundle{StackFrameDebugID: "id"},
			DebugNothingUploaded,
		},
	}
	for _, tc := range cases {
		got := resolveUploadedSourceFile(&tc.bundle, true)
		if got.Status != StatusAlert || got.Code != tc.code {
			t.Fatalf("%s: expected alert %s, got %s %s", tc.name, tc.code.ID(), got.Status, got.Code.ID())
		}
	}
}

func TestUploadedSourceMapOptionalNote(t *testing.T) {
	f := &facts.Bundle{StackFrameDebugID: "id", UploadedSourceFileWithCorrectDebugID: true}

	got := resolveUploadedSourceMap(f, true)
	if got.Status != StatusAlert || got.Code != DebugMapNothingUploaded {
		t.Fatalf("expected alert %s, got %s %s", DebugMapNothingUploaded.ID(), got.Status, got.Code.ID())
	}
	if len(got.Notes) == 0 || !strings.Contains(got.Notes[0], "optional") {
		t.Fatalf("expected the optional-step note, got %v", got.Notes)
	}
}

// Scenario: SDK fully supports debug IDs, frame has one, both uploads match.
func TestDebugIDPathwayAllChecked(t *testing.T) {
	f := &facts.Bundle{
		SDKDebugIDSupport:                    facts.SDKSupportFull,
		StackFrameDebugID:                    "feed0000-0000-0000-0000-000000000000",
		UploadedSomeArtifact:                 true,
		UploadedSomeArtifactWithDebugID:      true,
		UploadedSourceFileWithCorrectDebugID: true,
		UploadedSourceMapWithCorrectDebugID:  true,
	}

	checks := runChecklist(f, debugIDSteps)
	if len(checks) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(checks))
	}
	for i, c := range checks {
		if c.Status != StatusChecked {
			t.Fatalf("step %d: expected checked, got %s", i+1, c.Status)
		}
	}
}

func TestDebugIDResolversDeterministic(t *testing.T) {
	f := saturatedBundle()
	f.UploadedSourceMapWithCorrectDebugID = false

	first := runChecklist(f, debugIDSteps)
	for i := 0; i < 10; i++ {
		again := runChecklist(f, debugIDSteps)
		for j := range first {
			if first[j].Status != again[j].Status || first[j].Code != again[j].Code || first[j].Message != again[j].Message {
				t.Fatalf("run %d step %d differs from first run", i, j)
			}
		}
	}
}
