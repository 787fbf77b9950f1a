package debugger

import (
	"smdoctor/internal/facts"
)

// stepSpec binds a resolver to its gating prerequisite. A nil prerequisite
// means the step is always evaluated. The prerequisite chain is what makes a
// checklist read top-to-bottom: a step below an unmet one reports none.
type stepSpec struct {
	prereq  func(*facts.Bundle) bool
	resolve func(*facts.Bundle, bool) Check
}

var debugIDSteps = []stepSpec{
	{nil, resolveSDKDebugIDSupport},
	{gateFrameDebugID, resolveFrameDebugID},
	{gateUploadedSourceFile, resolveUploadedSourceFile},
	{gateUploadedSourceMap, resolveUploadedSourceMap},
}

var releaseSteps = []stepSpec{
	{nil, resolveReleaseSet},
	{gateReleaseArtifacts, resolveReleaseArtifacts},
	{gateReleaseSourceFile, resolveReleaseSourceFile},
	{gateReleaseSourceMap, resolveReleaseSourceMap},
}

var scrapingSteps = []stepSpec{
	{nil, resolveScrapeSourceFile},
	{gateScrapeSourceMap, resolveScrapeSourceMap},
}

// Debug ID injection only makes sense on SDKs that are able to carry it;
// needs-upgrade frames stop at step 1.
func gateFrameDebugID(f *facts.Bundle) bool {
	return f.SDKDebugIDSupport == facts.SDKSupportFull ||
		f.SDKDebugIDSupport == facts.SDKSupportUnofficial
}

func gateUploadedSourceFile(f *facts.Bundle) bool {
	return f.StackFrameDebugID != ""
}

func gateUploadedSourceMap(f *facts.Bundle) bool {
	return f.UploadedSourceFileWithCorrectDebugID
}

func gateReleaseArtifacts(f *facts.Bundle) bool {
	return f.ReleaseName != ""
}

func gateReleaseSourceFile(f *facts.Bundle) bool {
	return f.UploadedSomeArtifactToRelease
}

func gateReleaseSourceMap(f *facts.Bundle) bool {
	return f.SourceFileReleaseNameFetchingResult == facts.FetchFound
}

func gateScrapeSourceMap(f *facts.Bundle) bool {
	return f.SourceFileScrapingStatus.Kind == facts.ScrapeFound
}

func runChecklist(f *facts.Bundle, steps []stepSpec) []Check {
	out := make([]Check, 0, len(steps))
	for _, s := range steps {
		shouldValidate := s.prereq == nil || s.prereq(f)
		out = append(out, s.resolve(f, shouldValidate))
	}
	return out
}

// PathwayReport is the derived state of one remediation pathway.
type PathwayReport struct {
	Pathway  Pathway
	Progress Progress
	Checks   []Check
}

// Alerts counts checks in alert state.
func (r PathwayReport) Alerts() int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == StatusAlert {
			n++
		}
	}
	return n
}

// Report is the full derived diagnosis for one fact bundle: per-pathway
// progress and checklists plus the initially selected pathway.
type Report struct {
	DebugIDs PathwayReport
	Release  PathwayReport
	Scraping PathwayReport
	Default  Pathway
}

// Pathways returns the three pathway reports in fixed priority order.
func (r *Report) Pathways() []PathwayReport {
	return []PathwayReport{r.DebugIDs, r.Release, r.Scraping}
}

// ByPathway returns the report of the given pathway.
func (r *Report) ByPathway(p Pathway) PathwayReport {
	switch p {
	case PathwayRelease:
		return r.Release
	case PathwayScraping:
		return r.Scraping
	}
	return r.DebugIDs
}

// Build derives the full report from a fact bundle. Pure; the bundle is never
// mutated.
func Build(f *facts.Bundle) *Report {
	debugIDs := PathwayReport{
		Pathway:  PathwayDebugIDs,
		Progress: DebugIDProgress(f),
		Checks:   runChecklist(f, debugIDSteps),
	}
	release := PathwayReport{
		Pathway:  PathwayRelease,
		Progress: ReleaseProgress(f),
		Checks:   runChecklist(f, releaseSteps),
	}
	scraping := PathwayReport{
		Pathway:  PathwayScraping,
		Progress: ScrapingProgress(f),
		Checks:   runChecklist(f, scrapingSteps),
	}
	return &Report{
		DebugIDs: debugIDs,
		Release:  release,
		Scraping: scraping,
		Default:  DefaultPathway(debugIDs.Progress, release.Progress, scraping.Progress),
	}
}
