package debugger

import (
	"fmt"

	"smdoctor/internal/facts"
)

const scrapeFallbackNote = "Files are only fetched from your server when neither debug IDs nor release artifacts resolve the frame."

// resolveScrapeSourceFile is step 9. Always evaluated. A fetch that was never
// attempted — including because the frame already resolved through debug IDs
// or the release — is an alert explaining the fallback nature of scraping.
func resolveScrapeSourceFile(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepScrapeSourceFile)
	}
	if f.SourceFileScrapingStatus.Kind == facts.ScrapeFound {
		return checked(StepScrapeSourceFile)
	}
	if f.UploadedSourceFileWithCorrectDebugID ||
		f.SourceFileReleaseNameFetchingResult == facts.FetchFound ||
		f.SourceFileScrapingStatus.Kind == facts.ScrapeNotAttempted {
		return Check{
			Step:    StepScrapeSourceFile,
			Status:  StatusAlert,
			Code:    ScrapeFileNotAttempted,
			Message: "the source file was not fetched from your server",
			Notes:   []string{scrapeFallbackNote},
		}
	}
	return Check{
		Step:    StepScrapeSourceFile,
		Status:  StatusAlert,
		Code:    ScrapeFileFailed,
		Message: fmt.Sprintf("fetching the source file failed: %s", f.SourceFileScrapingStatus.Err),
	}
}

// resolveScrapeSourceMap is step 10. A map fetch that was never attempted is
// simply not applicable — none, not alert.
func resolveScrapeSourceMap(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepScrapeSourceMap)
	}
	switch f.SourceMapScrapingStatus.Kind {
	case facts.ScrapeFound:
		return checked(StepScrapeSourceMap)
	case facts.ScrapeNotAttempted:
		return notEvaluated(StepScrapeSourceMap)
	}
	return Check{
		Step:    StepScrapeSourceMap,
		Status:  StatusAlert,
		Code:    ScrapeMapFailed,
		Message: fmt.Sprintf("fetching the source map failed: %s", f.SourceMapScrapingStatus.Err),
		Notes:   []string{optionalIfUntransformedNote},
	}
}
