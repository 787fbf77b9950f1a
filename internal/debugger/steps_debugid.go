package debugger

import (
	"fmt"

	"smdoctor/internal/facts"
)

// MinSDKVersionForDebugIDs is the first official SDK release that injects
// debug IDs into stack frames.
const MinSDKVersionForDebugIDs = "7.56.0"

const optionalIfUntransformedNote = "This step may be optional if you do not transform or minify your code."

// resolveSDKDebugIDSupport is step 1. It is always evaluated. A frame that
// already carries a debug ID counts as success regardless of the detected
// SDK tier (the ID had to come from somewhere).
func resolveSDKDebugIDSupport(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepSDKDebugIDSupport)
	}
	if f.StackFrameDebugID != "" || f.SDKDebugIDSupport == facts.SDKSupportFull {
		return checked(StepSDKDebugIDSupport)
	}
	if f.SDKDebugIDSupport == facts.SDKSupportNeedsUpgrade {
		msg := fmt.Sprintf("the installed SDK is too old to inject debug IDs; upgrade to version %s or newer", MinSDKVersionForDebugIDs)
		if f.SDKVersion != "" {
			msg = fmt.Sprintf("the installed SDK version %s is too old to inject debug IDs; upgrade to version %s or newer", f.SDKVersion, MinSDKVersionForDebugIDs)
		}
		return Check{
			Step:     StepSDKDebugIDSupport,
			Status:   StatusAlert,
			Code:     DebugSDKNeedsUpgrade,
			Message:  msg,
			Notes:    []string{"Until the SDK is upgraded, the Releases pathway may resolve this frame instead."},
			SwitchTo: switchTo(PathwayRelease),
		}
	}
	return Check{
		Step:     StepSDKDebugIDSupport,
		Status:   StatusQuestion,
		Code:     DebugSDKUnofficial,
		Message:  "the event was sent by a community SDK; check its documentation for debug ID support, or try the Releases pathway",
		SwitchTo: switchTo(PathwayRelease),
	}
}

// resolveFrameDebugID is step 2: the frame itself must carry a debug ID.
func resolveFrameDebugID(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepFrameDebugID)
	}
	if f.StackFrameDebugID != "" {
		return checked(StepFrameDebugID)
	}
	if f.EventHasDebugIDs {
		return Check{
			Step:    StepFrameDebugID,
			Status:  StatusAlert,
			Code:    DebugPartialInjection,
			Message: "other frames of this event carry debug IDs but this one does not; the injection tooling did not cover the file behind this frame",
		}
	}
	if f.UploadedSomeArtifactWithDebugID {
		return Check{
			Step:    StepFrameDebugID,
			Status:  StatusAlert,
			Code:    DebugUploadedNotDeployed,
			Message: "artifacts with debug IDs were uploaded, but the deployed files carry none; deploy the same build the debug IDs were injected into",
		}
	}
	return Check{
		Step:    StepFrameDebugID,
		Status:  StatusAlert,
		Code:    DebugNoToolingUsed,
		Message: "no debug ID tooling appears to be set up; run your build through a bundler plugin or sentry-cli so debug IDs get injected",
	}
}

// resolveUploadedSourceFile is step 3: a source file whose debug ID matches
// the frame's must have been uploaded.
func resolveUploadedSourceFile(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepUploadedSourceFile)
	}
	if f.UploadedSourceFileWithCorrectDebugID {
		return checked(StepUploadedSourceFile)
	}
	if f.UploadedSomeArtifactWithDebugID {
		return Check{
			Step:    StepUploadedSourceFile,
			Status:  StatusAlert,
			Code:    DebugNoMatchingSourceFile,
			Message: fmt.Sprintf("artifacts with debug IDs exist, but no source file matches this frame's debug ID %s", f.StackFrameDebugID),
		}
	}
	if f.UploadedSomeArtifact {
		return Check{
			Step:    StepUploadedSourceFile,
			Status:  StatusAlert,
			Code:    DebugArtifactsWithoutDebugIDs,
			Message: "artifacts were uploaded, but none of them embed debug IDs; upload with tooling that injects debug IDs",
		}
	}
	return Check{
		Step:    StepUploadedSourceFile,
		Status:  StatusAlert,
		Code:    DebugNothingUploaded,
		Message: "no build artifacts have been uploaded yet",
	}
}

// resolveUploadedSourceMap is step 4: same ladder as step 3 for the source
// map, each branch noting the step may be optional for untransformed code.
func resolveUploadedSourceMap(f *facts.Bundle, shouldValidate bool) Check {
	if !shouldValidate {
		return notEvaluated(StepUploadedSourceMap)
	}
	if f.UploadedSourceMapWithCorrectDebugID {
		return checked(StepUploadedSourceMap)
	}
	if f.UploadedSomeArtifactWithDebugID {
		return Check{
			Step:    StepUploadedSourceMap,
			Status:  StatusAlert,
			Code:    DebugNoMatchingSourceMap,
			Message: fmt.Sprintf("artifacts with debug IDs exist, but no source map matches this frame's debug ID %s", f.StackFrameDebugID),
			Notes:   []string{optionalIfUntransformedNote},
		}
	}
	if f.UploadedSomeArtifact {
		return Check{
			Step:    StepUploadedSourceMap,
			Status:  StatusAlert,
			Code:    DebugMapArtifactsWithoutDebugIDs,
			Message: "artifacts were uploaded, but none of them embed debug IDs; upload with tooling that injects debug IDs",
			Notes:   []string{optionalIfUntransformedNote},
		}
	}
	return Check{
		Step:    StepUploadedSourceMap,
		Status:  StatusAlert,
		Code:    DebugMapNothingUploaded,
		Message: "no build artifacts have been uploaded yet",
		Notes:   []string{optionalIfUntransformedNote},
	}
}
