package sources

import (
	"fmt"
	"path/filepath"

	lnk "github.com/parsiya/golnk"
)

// ResolveLink extracts the target path from a .lnk shell link file. It
// prefers the LinkInfo base paths and falls back to the relative-path
// string data, resolved against the shortcut's own directory.
func ResolveLink(path string) (string, error) {
	f, err := lnk.File(path)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.LinkInfo.LocalBasePath != "" {
		return f.LinkInfo.LocalBasePath, nil
	}
	if f.LinkInfo.LocalBasePathUnicode != "" {
		return f.LinkInfo.LocalBasePathUnicode, nil
	}
	if f.StringData.RelativePath != "" {
		return filepath.Join(filepath.Dir(path), f.StringData.RelativePath), nil
	}

	return "", fmt.Errorf("%s has no resolvable target", path)
}
