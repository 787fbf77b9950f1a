package debugger

import (
	"fortio.org/safecast"

	"smdoctor/internal/facts"
)

// Progress is the satisfied weight of a pathway over its total weight.
type Progress struct {
	Satisfied uint8
	Total     uint8
}

// Fraction returns the completion share in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Satisfied) / float64(p.Total)
}

// Percent returns the completion share as whole percent.
func (p Progress) Percent() uint8 {
	if p.Total == 0 {
		return 0
	}
	pct, err := safecast.Conv[uint8](int(p.Satisfied) * 100 / int(p.Total))
	if err != nil {
		return 100
	}
	return pct
}

// DebugIDProgress counts the four equally weighted debug-ID conditions.
func DebugIDProgress(f *facts.Bundle) Progress {
	p := Progress{Total: 4}
	if f.SDKDebugIDSupport == facts.SDKSupportFull {
		p.Satisfied++
	}
	if f.StackFrameDebugID != "" {
		p.Satisfied++
	}
	if f.UploadedSourceFileWithCorrectDebugID {
		p.Satisfied++
	}
	if f.UploadedSourceMapWithCorrectDebugID {
		p.Satisfied++
	}
	return p
}

// ReleaseProgress counts the four equally weighted release conditions.
func ReleaseProgress(f *facts.Bundle) Progress {
	p := Progress{Total: 4}
	if f.ReleaseName != "" {
		p.Satisfied++
	}
	if f.UploadedSomeArtifactToRelease {
		p.Satisfied++
	}
	if f.SourceFileReleaseNameFetchingResult == facts.FetchFound {
		p.Satisfied++
	}
	if f.SourceMapReleaseNameFetchingResult == facts.FetchFound {
		p.Satisfied++
	}
	return p
}

// ScrapingProgress weighs the source map fetch four times the source file
// fetch: getting the map scrape right is the hard part, and the pathway as a
// whole is deprioritized relative to the other two.
func ScrapingProgress(f *facts.Bundle) Progress {
	p := Progress{Total: 5}
	if f.SourceFileScrapingStatus.Kind == facts.ScrapeFound {
		p.Satisfied++
	}
	if f.SourceMapScrapingStatus.Kind == facts.ScrapeFound {
		p.Satisfied += 4
	}
	return p
}

// DefaultPathway picks the pathway with the strictly greatest completion
// fraction. Слева направо: при равенстве остаётся более ранний pathway.
func DefaultPathway(debugIDs, release, scraping Progress) Pathway {
	best := PathwayDebugIDs
	bestFraction := debugIDs.Fraction()
	if release.Fraction() > bestFraction {
		best = PathwayRelease
		bestFraction = release.Fraction()
	}
	if scraping.Fraction() > bestFraction {
		best = PathwayScraping
	}
	return best
}
