// Utilities for expanding user-supplied path strings.
package shared

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var winEnvRegex = regexp.MustCompile(`%([^%]+)%`)

// ExpandPath expands Windows-style %VAR% references, Unix-style $VAR
// references, and a leading ~ against the current environment. Unknown
// %VAR% references are left untouched so the caller's not-found error
// names what the user typed.
func ExpandPath(raw string) string {
	expanded := winEnvRegex.ReplaceAllStringFunc(raw, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})

	expanded = os.Expand(expanded, func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return "$" + name
	})

	if expanded == "~" || strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = home + expanded[1:]
		}
	}

	return expanded
}

// Canonicalize turns a path into its canonical absolute form. Case is
// preserved for display; identity comparison folds case separately via
// [models.Fold]-style keys.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
