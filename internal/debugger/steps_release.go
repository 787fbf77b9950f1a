package debugger

import (
	"fmt"

	"smdoctor/internal/facts"
)

const (
	releaseConfigExample = `Sentry.init({ release: "my-project@1.0.0" })`
	distConfigExample    = `Sentry.init({ dist: "android" })`
)

// resolveReleaseSet is step 5. Always evaluated.
func resolveReleaseSet(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepReleaseSet)
	}
	if f.ReleaseName != "" {
		return checked(StepReleaseSet)
	}
	return Check{
		Step:    StepReleaseSet,
		Status:  StatusAlert,
		Code:    ReleaseNotConfigured,
		Message: "the event carries no release value, so uploaded artifacts cannot be associated with it",
		Notes:   []string{"Configure a release in your SDK setup, e.g. " + releaseConfigExample},
	}
}

// resolveReleaseArtifacts is step 6: something must be uploaded under the
// event's release.
func resolveReleaseArtifacts(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepReleaseArtifacts)
	}
	if f.UploadedSomeArtifactToRelease {
		return checked(StepReleaseArtifacts)
	}
	return Check{
		Step:    StepReleaseArtifacts,
		Status:  StatusAlert,
		Code:    ReleaseNoArtifacts,
		Message: fmt.Sprintf("no artifacts have been uploaded for release %q", f.ReleaseName),
	}
}

// resolveReleaseSourceFile is step 7: the frame path must have matched one of
// the release artifacts. A frame without any recorded path gets its own
// diagnostic instead of the generic mismatch text.
func resolveReleaseSourceFile(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepReleaseSourceFile)
	}
	if f.SourceFileReleaseNameFetchingResult == facts.FetchFound {
		return checked(StepReleaseSourceFile)
	}
	if f.SourceFileReleaseNameFetchingResult == facts.FetchWrongDist {
		return wrongDistCheck(StepReleaseSourceFile, ReleaseWrongDist, f, nil)
	}
	if f.StackFramePath == "" {
		return Check{
			Step:    StepReleaseSourceFile,
			Status:  StatusAlert,
			Code:    ReleaseFrameMissingPath,
			Message: "this stack frame carries no path, so it cannot be matched against uploaded artifact names",
		}
	}
	return Check{
		Step:    StepReleaseSourceFile,
		Status:  StatusAlert,
		Code:    ReleasePathMismatch,
		Message: fmt.Sprintf("the frame path %q matched no uploaded artifact; an artifact named %q was expected", f.StackFramePath, f.MatchingArtifactName),
	}
}

// resolveReleaseSourceMap is step 8: the sourceMappingURL reference of the
// resolved source file must itself match a release artifact.
func resolveReleaseSourceMap(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepReleaseSourceMap)
	}
	if f.SourceMapReleaseNameFetchingResult == facts.FetchFound {
		return checked(StepReleaseSourceMap)
	}
	if f.ReleaseSourceMapReference == "" {
		return Check{
			Step:    StepReleaseSourceMap,
			Status:  StatusAlert,
			Code:    ReleaseMissingSourceMapRef,
			Message: "the resolved source file contains no sourceMappingURL comment, so no source map could be located",
			Notes:   []string{optionalIfUntransformedNote},
		}
	}
	if f.SourceMapReleaseNameFetchingResult == facts.FetchWrongDist {
		return wrongDistCheck(StepReleaseSourceMap, ReleaseMapWrongDist, f, nil)
	}
	return Check{
		Step:    StepReleaseSourceMap,
		Status:  StatusAlert,
		Code:    ReleaseMapNotFound,
		Message: fmt.Sprintf("the source map referenced as %q was not found among the release artifacts", f.ReleaseSourceMapReference),
		Notes:   []string{optionalIfUntransformedNote},
	}
}

// wrongDistCheck renders the shared dist-mismatch diagnosis: artifacts exist
// under the release but not under the event's dist value.
func wrongDistCheck(step Step, code Code, f *facts.Bundle, extraNotes []string) Check {
	msg := "artifacts were found for the release, but under a different dist value; upload artifacts with the dist that is set on the event"
	if f.DistName != "" {
		msg = fmt.Sprintf("artifacts were found for release %q, but not for dist %q; upload artifacts with a matching dist", f.ReleaseName, f.DistName)
	}
	notes := append([]string{"Configure the dist in your SDK setup, e.g. " + distConfigExample}, extraNotes...)
	return Check{
		Step:    step,
		Status:  StatusAlert,
		Code:    code,
		Message: msg,
		Notes:   notes,
	}
}
