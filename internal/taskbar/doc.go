// Package taskbar implements the pin-operation orchestration engine.
//
// The underlying OS exposes no single stable API for taskbar manipulation,
// so the [Engine] composes three cooperating pieces:
//
//   - Enumeration: every [sources.Source] is queried in priority order and
//     merged first-writer-wins by case-folded canonical path.
//   - Fallback chains: pin and unpin each have a static ordered [Strategy]
//     list, gated on detected OS facts. The chain stops at the first
//     success, so at most one strategy ever takes effect per invocation;
//     every failure is recorded as a [models.Diagnostic].
//   - Matching: [Match] resolves user identifiers (name or path, exact or
//     substring) against the enumerated set with first-match semantics.
//
// Strategies act through the [Ops] collaborator, which in production runs
// bounded helper scripts against the shell's COM surfaces. Partial effects
// of a failed strategy are not rolled back: the mechanisms involved offer
// no transactional primitive, and the next strategy must observe whatever
// state the previous one left behind.
package taskbar
