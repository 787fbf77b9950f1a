package debugger

// Pathway identifies one of the three remediation pathways.
type Pathway uint8

const (
	// PathwayDebugIDs pairs artifacts via injected debug IDs. Preferred.
	PathwayDebugIDs Pathway = iota
	// PathwayRelease matches artifacts uploaded under the event's release.
	PathwayRelease
	// PathwayScraping fetches files from the server hosting them. Fallback.
	PathwayScraping
)

func (p Pathway) String() string {
	switch p {
	case PathwayDebugIDs:
		return "debug-ids"
	case PathwayRelease:
		return "release"
	case PathwayScraping:
		return "fetching"
	}
	return "unknown"
}

// Title returns the human tab label for the pathway.
func (p Pathway) Title() string {
	switch p {
	case PathwayDebugIDs:
		return "Debug IDs"
	case PathwayRelease:
		return "Releases"
	case PathwayScraping:
		return "Hosting Publicly"
	}
	return "Unknown"
}

// CheckStatus defines the single most relevant state of a checklist step.
type CheckStatus uint8

const (
	// StatusNone means the step was not evaluated (unmet prerequisite).
	StatusNone CheckStatus = iota
	// StatusChecked means the step's success condition holds.
	StatusChecked
	// StatusAlert means a concrete problem was diagnosed.
	StatusAlert
	// StatusQuestion means the situation is ambiguous and needs verification.
	StatusQuestion
)

func (s CheckStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusChecked:
		return "checked"
	case StatusAlert:
		return "alert"
	case StatusQuestion:
		return "question"
	}
	return "unknown"
}

// Step identifies a checklist step across all pathways.
type Step uint8

const (
	StepSDKDebugIDSupport Step = iota
	StepFrameDebugID
	StepUploadedSourceFile
	StepUploadedSourceMap
	StepReleaseSet
	StepReleaseArtifacts
	StepReleaseSourceFile
	StepReleaseSourceMap
	StepScrapeSourceFile
	StepScrapeSourceMap
)

func (s Step) String() string {
	switch s {
	case StepSDKDebugIDSupport:
		return "sdk-debug-id-support"
	case StepFrameDebugID:
		return "frame-debug-id"
	case StepUploadedSourceFile:
		return "uploaded-source-file"
	case StepUploadedSourceMap:
		return "uploaded-source-map"
	case StepReleaseSet:
		return "release-set"
	case StepReleaseArtifacts:
		return "release-artifacts"
	case StepReleaseSourceFile:
		return "release-source-file"
	case StepReleaseSourceMap:
		return "release-source-map"
	case StepScrapeSourceFile:
		return "scrape-source-file"
	case StepScrapeSourceMap:
		return "scrape-source-map"
	}
	return "unknown"
}

// Title returns the checklist label of the step.
func (s Step) Title() string {
	switch s {
	case StepSDKDebugIDSupport:
		return "SDK supports debug IDs"
	case StepFrameDebugID:
		return "Stack frame has a debug ID"
	case StepUploadedSourceFile:
		return "Source file with matching debug ID uploaded"
	case StepUploadedSourceMap:
		return "Source map with matching debug ID uploaded"
	case StepReleaseSet:
		return "Event has a release value"
	case StepReleaseArtifacts:
		return "Artifacts uploaded to the release"
	case StepReleaseSourceFile:
		return "Stack frame path matches a release artifact"
	case StepReleaseSourceMap:
		return "Source map reference matches a release artifact"
	case StepScrapeSourceFile:
		return "Source file available on your server"
	case StepScrapeSourceMap:
		return "Source map available on your server"
	}
	return "Unknown step"
}

// Check is the resolved state of one checklist step. Code and Message are set
// for alert/question results; Notes carry optional remarks and configuration
// examples. SwitchTo, when non-nil, is an affordance for the surrounding UI to
// offer a jump to another pathway tab — never an automatic transition.
type Check struct {
	Step     Step
	Status   CheckStatus
	Code     Code
	Message  string
	Notes    []string
	SwitchTo *Pathway
}

func checked(step Step) Check {
	return Check{Step: step, Status: StatusChecked}
}

func notEvaluated(step Step) Check {
	return Check{Step: step, Status: StatusNone}
}

func switchTo(p Pathway) *Pathway {
	return &p
}
