package debugger

import (
	"testing"

	"smdoctor/internal/facts"
)

func TestFormatGolden(t *testing.T) {
	f := &facts.Bundle{
		SDKDebugIDSupport:                   facts.SDKSupportNeedsUpgrade,
		SDKVersion:                          "7.10.0",
		SourceFileReleaseNameFetchingResult: facts.FetchUnsuccessful,
		SourceMapReleaseNameFetchingResult:  facts.FetchUnsuccessful,
	}

	expected := "default debug-ids\n" +
		"progress debug-ids 0/4\n" +
		"progress release 0/4\n" +
		"progress fetching 0/5\n" +
		"alert DBG1001 debug-ids:1 the installed SDK version 7.10.0 is too old to inject debug IDs; upgrade to version 7.56.0 or newer\n" +
		"none - debug-ids:2 Stack frame has a debug ID\n" +
		"none - debug-ids:3 Source file with matching debug ID uploaded\n" +
		"none - debug-ids:4 Source map with matching debug ID uploaded\n" +
		"alert REL2001 release:1 the event carries no release value, so uploaded artifacts cannot be associated with it\n" +
		"none - release:2 Artifacts uploaded to the release\n" +
		"none - release:3 Stack frame path matches a release artifact\n" +
		"none - release:4 Source map reference matches a release artifact\n" +
		"alert SCR3001 fetching:1 the source file was not fetched from your server\n" +
		"none - fetching:2 Source map available on your server"

	if got := FormatGolden(Build(f), false); got != expected {
		t.Fatalf("unexpected golden output:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenWithNotes(t *testing.T) {
	f := &facts.Bundle{
		SDKDebugIDSupport:                   facts.SDKSupportFull,
		SourceFileReleaseNameFetchingResult: facts.FetchUnsuccessful,
		SourceMapReleaseNameFetchingResult:  facts.FetchUnsuccessful,
	}

	rep := Build(f)
	withNotes := FormatGolden(rep, true)
	without := FormatGolden(rep, false)

	if withNotes == without {
		t.Fatalf("expected notes to add lines")
	}
	wantNote := "note REL2001 release:1 Configure a release in your SDK setup, e.g. Sentry.init({ release: \"my-project@1.0.0\" })"
	if !containsLine(withNotes, wantNote) {
		t.Fatalf("expected note line %q in:\n%s", wantNote, withNotes)
	}
}

func TestFormatGoldenStable(t *testing.T) {
	f := saturatedBundle()
	rep := Build(f)

	first := FormatGolden(rep, true)
	for i := 0; i < 5; i++ {
		if got := FormatGolden(Build(f), true); got != first {
			t.Fatalf("run %d: golden output not stable", i)
		}
	}
}

func containsLine(text, line string) bool {
	for len(text) > 0 {
		end := len(text)
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				end = i
				break
			}
		}
		if text[:end] == line {
			return true
		}
		if end == len(text) {
			break
		}
		text = text[end+1:]
	}
	return false
}
