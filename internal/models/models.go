// package models defines the data model for taskbar pin operations
package models

import (
	"path/filepath"
	"strings"
)

// ItemKind classifies what a pinned item points at.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindApplication
	KindFile
	KindFolder
	KindUrl
	KindShortcut
)

var kindNames = map[ItemKind]string{
	KindUnknown:     "unknown",
	KindApplication: "application",
	KindFile:        "file",
	KindFolder:      "folder",
	KindUrl:         "url",
	KindShortcut:    "shortcut",
}

func (k ItemKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// executableExts are the suffixes classified as applications. The same set
// drives the resolver's bare-name probe.
var executableExts = map[string]bool{
	".exe": true,
	".com": true,
	".bat": true,
	".cmd": true,
	".msc": true,
}

// IsExecutablePath reports whether the path carries an executable suffix.
func IsExecutablePath(path string) bool {
	return executableExts[strings.ToLower(filepath.Ext(path))]
}

// KindOf classifies a target path by its suffix alone.
func KindOf(path string) ItemKind {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case executableExts[ext]:
		return KindApplication
	case ext == ".url":
		return KindUrl
	case ext == ".lnk":
		return KindShortcut
	case ext == "":
		return KindFolder
	default:
		return KindFile
	}
}

// PinnedItem is one entry on the taskbar. Identity is the case-folded
// canonical path; Name and Position are advisory only.
type PinnedItem struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Kind     ItemKind `json:"kind"`
	Position int      `json:"position"` // best effort, -1 when the source has no ordering
}

// Key returns the identity key for deduplication: the case-folded path with
// any trailing separator removed.
func (p PinnedItem) Key() string {
	return Fold(p.Path)
}

// Fold normalizes a path for case-insensitive identity comparison.
func Fold(path string) string {
	return strings.ToLower(strings.TrimRight(path, `\/`))
}

// Diagnostic records one failed strategy attempt within a chain run.
type Diagnostic struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// OperationResult is the outcome of one pin or unpin invocation. It is
// constructed once by the chain executor and never mutated afterwards.
type OperationResult struct {
	Succeeded    bool         `json:"succeeded"`
	StrategyUsed string       `json:"strategy_used,omitempty"`
	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
}
