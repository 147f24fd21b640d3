package sources

import (
	"strings"
	"unicode/utf16"

	"github.com/desertthunder/pinx/internal/models"
)

// scanUTF16Paths walks an undocumented binary blob for UTF-16LE runs that
// look like absolute Windows paths. This deliberately does not decode the
// surrounding structure: the layouts shift between builds, and paths are
// the only fields the enumeration needs.
func scanUTF16Paths(blob []byte) []string {
	var paths []string
	seen := map[string]bool{}
	var run []uint16

	flush := func() {
		if len(run) >= 4 {
			candidate := string(utf16.Decode(run))
			if looksLikePath(candidate) {
				key := models.Fold(candidate)
				if !seen[key] {
					seen[key] = true
					paths = append(paths, candidate)
				}
			}
		}
		run = run[:0]
	}

	for i := 0; i+1 < len(blob); i += 2 {
		ch := uint16(blob[i]) | uint16(blob[i+1])<<8
		if printableUTF16(ch) {
			run = append(run, ch)
			continue
		}
		flush()
	}
	flush()

	return paths
}

func printableUTF16(ch uint16) bool {
	return ch >= 0x20 && ch < 0xFFFE
}

// looksLikePath accepts drive-letter and UNC forms only. Everything else in
// the blobs (GUIDs, AUMIDs, property names) is noise to this system.
func looksLikePath(s string) bool {
	if len(s) < 4 {
		return false
	}
	if strings.HasPrefix(s, `\\`) {
		return true
	}
	drive := s[0]
	isLetter := (drive >= 'A' && drive <= 'Z') || (drive >= 'a' && drive <= 'z')
	return isLetter && s[1] == ':' && s[2] == '\\'
}

// itemsFromPaths converts scanned path strings into pinned items. Positions
// are unknown: blob order reflects serialization, not taskbar order.
func itemsFromPaths(paths []string) []models.PinnedItem {
	items := make([]models.PinnedItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, models.PinnedItem{
			Name:     baseName(p),
			Path:     p,
			Kind:     models.KindOf(p),
			Position: -1,
		})
	}
	return items
}

// baseName strips directories and the extension using backslash semantics,
// since scanned paths are Windows-form regardless of the build host.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "."); i > 0 {
		path = path[:i]
	}
	return path
}
