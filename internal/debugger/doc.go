// Package debugger derives the diagnostic state of a source map resolution
// attempt from a pre-computed fact bundle.
//
// # Purpose
//
//   - Compute per-pathway completion progress (Debug IDs, Releases,
//     Server-Hosted fetching) with the fixed weights each pathway defines.
//   - Select the initially active pathway: strictly greatest fraction wins,
//     ties keep the earlier pathway in priority order.
//   - Resolve every checklist step to the single most relevant state:
//     none (prerequisite unmet), checked, alert(reason), question(reason).
//
// # Scope
//
// Everything in this package is pure and deterministic: the same bundle
// always yields the same report. No I/O, no validation of the bundle — facts
// are computed upstream and trusted as-is. Rendering lives in
// internal/report and internal/ui; file loading in internal/facts.
//
// # Data model
//
// Check is the central record: a Step, a CheckStatus, a stable Code
// (DBG/REL/SCR numeric blocks), a human message, optional notes, and an
// optional suggested pathway switch that the UI presents as a clickable
// affordance, never as an automatic transition.
//
// Each checklist's step order encodes a dependency chain (see stepSpec in
// checklist.go): a resolver whose prerequisite predicate fails reports
// StatusNone without looking at any other field. Within a resolver the
// evaluation order is fixed: success condition first, then the ordered ladder
// of more specific failure diagnoses, ending in a generic fallback.
package debugger
