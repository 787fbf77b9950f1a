package debugger

import "fmt"

// Code is a stable identifier for one diagnostic finding. Blocks:
// 1000-1999 debug-ID pathway, 2000-2999 release pathway, 3000-3999 scraping.
type Code uint16

const (
	UnknownCode Code = 0

	// Debug ID pathway (1000-1999)
	DebugSDKNeedsUpgrade             Code = 1001
	DebugSDKUnofficial               Code = 1002
	DebugPartialInjection            Code = 1003
	DebugUploadedNotDeployed         Code = 1004
	DebugNoToolingUsed               Code = 1005
	DebugNoMatchingSourceFile        Code = 1006
	DebugArtifactsWithoutDebugIDs    Code = 1007
	DebugNothingUploaded             Code = 1008
	DebugNoMatchingSourceMap         Code = 1009
	DebugMapArtifactsWithoutDebugIDs Code = 1010
	DebugMapNothingUploaded          Code = 1011

	// Release pathway (2000-2999)
	ReleaseNotConfigured       Code = 2001
	ReleaseNoArtifacts         Code = 2002
	ReleaseWrongDist           Code = 2003
	ReleaseFrameMissingPath    Code = 2004
	ReleasePathMismatch        Code = 2005
	ReleaseMissingSourceMapRef Code = 2006
	ReleaseMapWrongDist        Code = 2007
	ReleaseMapNotFound         Code = 2008

	// Scraping pathway (3000-3999)
	ScrapeFileNotAttempted Code = 3001
	ScrapeFileFailed       Code = 3002
	ScrapeMapFailed        Code = 3003
)

var codeTitle = map[Code]string{
	UnknownCode: "Unknown finding",

	DebugSDKNeedsUpgrade:             "SDK needs an upgrade",
	DebugSDKUnofficial:               "Unofficial SDK",
	DebugPartialInjection:            "Debug ID injection incomplete",
	DebugUploadedNotDeployed:         "Uploaded files not deployed",
	DebugNoToolingUsed:               "No debug ID tooling used",
	DebugNoMatchingSourceFile:        "No source file with matching debug ID",
	DebugArtifactsWithoutDebugIDs:    "Artifacts uploaded without debug IDs",
	DebugNothingUploaded:             "No artifacts uploaded",
	DebugNoMatchingSourceMap:         "No source map with matching debug ID",
	DebugMapArtifactsWithoutDebugIDs: "Artifacts uploaded without debug IDs",
	DebugMapNothingUploaded:          "No artifacts uploaded",

	ReleaseNotConfigured:       "No release configured",
	ReleaseNoArtifacts:         "Release has no uploaded artifacts",
	ReleaseWrongDist:           "Dist mismatch",
	ReleaseFrameMissingPath:    "Stack frame has no path",
	ReleasePathMismatch:        "Frame path matches no artifact",
	ReleaseMissingSourceMapRef: "Missing sourceMappingURL comment",
	ReleaseMapWrongDist:        "Dist mismatch",
	ReleaseMapNotFound:         "Referenced source map not found",

	ScrapeFileNotAttempted: "Fetching was not attempted",
	ScrapeFileFailed:       "Fetching the source file failed",
	ScrapeMapFailed:        "Fetching the source map failed",
}

// ID returns the compact stable identifier, e.g. "REL2003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DBG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("REL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SCR%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	title, ok := codeTitle[c]
	if !ok {
		return codeTitle[UnknownCode]
	}
	return title
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
