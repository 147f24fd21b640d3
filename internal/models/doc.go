// Package models defines the transient domain entities for pinx.
//
// The package contains Data Transfer Objects only:
//   - [PinnedItem] : One taskbar entry, identified by its case-folded canonical path
//   - [OperationResult] : Structured outcome of a pin/unpin chain run
//   - [Diagnostic] : One failed strategy attempt inside a chain run
//
// Nothing here persists. Pinned items are constructed fresh on every
// enumeration pass; the operating system owns the durable pin state.
// Deduplication and equality are meaningful only within a single pass,
// which is why identity lives in [PinnedItem.Key] rather than in any
// stored identifier.
package models
