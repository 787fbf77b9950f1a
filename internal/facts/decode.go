package facts

import (
	"fmt"
	"strings"
)

// bundleFile is the on-disk shape of a fact bundle. JSON keys follow the
// camelCase names the resolution service emits; TOML keys are snake_case.
type bundleFile struct {
	SDKDebugIDSupport string `json:"sdkDebugIdSupport" toml:"sdk_debug_id_support"`
	SDKVersion        string `json:"sdkVersion" toml:"sdk_version"`
	StackFrameDebugID string `json:"stackFrameDebugId" toml:"stack_frame_debug_id"`
	EventHasDebugIDs  bool   `json:"eventHasDebugIds" toml:"event_has_debug_ids"`

	UploadedSomeArtifact                 bool `json:"uploadedSomeArtifact" toml:"uploaded_some_artifact"`
	UploadedSomeArtifactWithDebugID      bool `json:"uploadedSomeArtifactWithDebugId" toml:"uploaded_some_artifact_with_debug_id"`
	UploadedSourceFileWithCorrectDebugID bool `json:"uploadedSourceFileWithCorrectDebugId" toml:"uploaded_source_file_with_correct_debug_id"`
	UploadedSourceMapWithCorrectDebugID  bool `json:"uploadedSourceMapWithCorrectDebugId" toml:"uploaded_source_map_with_correct_debug_id"`

	ReleaseName                   string `json:"releaseName" toml:"release_name"`
	UploadedSomeArtifactToRelease bool   `json:"uploadedSomeArtifactToRelease" toml:"uploaded_some_artifact_to_release"`
	DistName                      string `json:"distName" toml:"dist_name"`
	StackFramePath                string `json:"stackFramePath" toml:"stack_frame_path"`
	MatchingArtifactName          string `json:"matchingArtifactName" toml:"matching_artifact_name"`

	SourceFileReleaseNameFetchingResult string `json:"sourceFileReleaseNameFetchingResult" toml:"source_file_release_name_fetching_result"`
	ReleaseSourceMapReference           string `json:"releaseSourceMapReference" toml:"release_source_map_reference"`
	SourceMapReleaseNameFetchingResult  string `json:"sourceMapReleaseNameFetchingResult" toml:"source_map_release_name_fetching_result"`

	SourceFileScrapingStatus scrapeStatusFile `json:"sourceFileScrapingStatus" toml:"source_file_scraping_status"`
	SourceMapScrapingStatus  scrapeStatusFile `json:"sourceMapScrapingStatus" toml:"source_map_scraping_status"`
}

type scrapeStatusFile struct {
	Status string `json:"status" toml:"status"`
	Error  string `json:"error" toml:"error"`
}

func parseSDKSupport(value string) (SDKSupport, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "full":
		return SDKSupportFull, nil
	case "needs-upgrade":
		return SDKSupportNeedsUpgrade, nil
	case "unofficial-sdk":
		return SDKSupportUnofficial, nil
	case "":
		return 0, fmt.Errorf("missing sdk debug id support value")
	}
	return 0, fmt.Errorf("invalid sdk debug id support value %q (expected full|needs-upgrade|unofficial-sdk)", value)
}

func parseFetchResult(field, value string) (FetchResult, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "found":
		return FetchFound, nil
	case "wrong-dist":
		return FetchWrongDist, nil
	case "unsuccessful":
		return FetchUnsuccessful, nil
	case "":
		return 0, fmt.Errorf("missing %s value", field)
	}
	return 0, fmt.Errorf("invalid %s value %q (expected found|wrong-dist|unsuccessful)", field, value)
}

// parseScrapingStatus tolerates an omitted status: a bundle that never mentions
// scraping means scraping was not attempted.
func parseScrapingStatus(field string, raw scrapeStatusFile) (ScrapingStatus, error) {
	switch strings.TrimSpace(strings.ToLower(raw.Status)) {
	case "", "none":
		return ScrapingStatus{Kind: ScrapeNotAttempted}, nil
	case "found":
		return ScrapingStatus{Kind: ScrapeFound}, nil
	case "error":
		return ScrapingStatus{Kind: ScrapeFailed, Err: raw.Error}, nil
	}
	return ScrapingStatus{}, fmt.Errorf("invalid %s status %q (expected found|error|none)", field, raw.Status)
}

func (raw bundleFile) toBundle() (Bundle, error) {
	sdk, err := parseSDKSupport(raw.SDKDebugIDSupport)
	if err != nil {
		return Bundle{}, err
	}
	fileFetch, err := parseFetchResult("source file fetching result", raw.SourceFileReleaseNameFetchingResult)
	if err != nil {
		return Bundle{}, err
	}
	mapFetch, err := parseFetchResult("source map fetching result", raw.SourceMapReleaseNameFetchingResult)
	if err != nil {
		return Bundle{}, err
	}
	fileScrape, err := parseScrapingStatus("source file scraping", raw.SourceFileScrapingStatus)
	if err != nil {
		return Bundle{}, err
	}
	mapScrape, err := parseScrapingStatus("source map scraping", raw.SourceMapScrapingStatus)
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		SDKDebugIDSupport: sdk,
		SDKVersion:        strings.TrimSpace(raw.SDKVersion),
		StackFrameDebugID: strings.TrimSpace(raw.StackFrameDebugID),
		EventHasDebugIDs:  raw.EventHasDebugIDs,

		UploadedSomeArtifact:                 raw.UploadedSomeArtifact,
		UploadedSomeArtifactWithDebugID:      raw.UploadedSomeArtifactWithDebugID,
		UploadedSourceFileWithCorrectDebugID: raw.UploadedSourceFileWithCorrectDebugID,
		UploadedSourceMapWithCorrectDebugID:  raw.UploadedSourceMapWithCorrectDebugID,

		ReleaseName:                   strings.TrimSpace(raw.ReleaseName),
		UploadedSomeArtifactToRelease: raw.UploadedSomeArtifactToRelease,
		DistName:                      strings.TrimSpace(raw.DistName),
		StackFramePath:                strings.TrimSpace(raw.StackFramePath),
		MatchingArtifactName:          strings.TrimSpace(raw.MatchingArtifactName),

		SourceFileReleaseNameFetchingResult: fileFetch,
		ReleaseSourceMapReference:           strings.TrimSpace(raw.ReleaseSourceMapReference),
		SourceMapReleaseNameFetchingResult:  mapFetch,

		SourceFileScrapingStatus: fileScrape,
		SourceMapScrapingStatus:  mapScrape,
	}, nil
}
