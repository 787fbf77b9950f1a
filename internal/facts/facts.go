package facts

// SDKSupport is the SDK's capability tier for debug ID injection.
type SDKSupport uint8

const (
	// SDKSupportFull means the installed SDK injects debug IDs on its own.
	SDKSupportFull SDKSupport = iota
	// SDKSupportNeedsUpgrade means the SDK is official but too old for debug IDs.
	SDKSupportNeedsUpgrade
	SDKSupportUnofficial
)

func (s SDKSupport) String() string {
	switch s {
	case SDKSupportFull:
		return "full"
	case SDKSupportNeedsUpgrade:
		return "needs-upgrade"
	case SDKSupportUnofficial:
		return "unofficial-sdk"
	}
	return "unknown"
}

// FetchResult is the outcome of a release-based artifact lookup.
type FetchResult uint8

const (
	FetchFound FetchResult = iota
	FetchWrongDist
	FetchUnsuccessful
)

func (r FetchResult) String() string {
	switch r {
	case FetchFound:
		return "found"
	case FetchWrongDist:
		return "wrong-dist"
	case FetchUnsuccessful:
		return "unsuccessful"
	}
	return "unknown"
}

// ScrapeKind discriminates the variants of ScrapingStatus.
type ScrapeKind uint8

const (
	// ScrapeNotAttempted means no fetch over the network was tried.
	ScrapeNotAttempted ScrapeKind = iota
	ScrapeFound
	ScrapeFailed
)

func (k ScrapeKind) String() string {
	switch k {
	case ScrapeNotAttempted:
		return "none"
	case ScrapeFound:
		return "found"
	case ScrapeFailed:
		return "error"
	}
	return "unknown"
}

// ScrapingStatus — сумма-тип: found | error(msg) | none.
// Err заполнен только для ScrapeFailed.
type ScrapingStatus struct {
	Kind ScrapeKind
	Err  string
}

// Bundle is the immutable fact record for one stack frame of one event,
// produced upstream by the resolution service. Optional string fields use ""
// for "absent". The engine trusts the bundle and never cross-validates it.
type Bundle struct {
	SDKDebugIDSupport SDKSupport
	SDKVersion        string
	StackFrameDebugID string
	EventHasDebugIDs  bool

	UploadedSomeArtifact                 bool
	UploadedSomeArtifactWithDebugID      bool
	UploadedSourceFileWithCorrectDebugID bool
	UploadedSourceMapWithCorrectDebugID  bool

	ReleaseName                  string
	UploadedSomeArtifactToRelease bool
	DistName                     string
	StackFramePath               string
	MatchingArtifactName         string

	SourceFileReleaseNameFetchingResult FetchResult
	ReleaseSourceMapReference           string
	SourceMapReleaseNameFetchingResult  FetchResult

	SourceFileScrapingStatus ScrapingStatus
	SourceMapScrapingStatus  ScrapingStatus
}
