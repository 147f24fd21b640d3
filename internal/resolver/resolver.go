// package resolver turns user-supplied identifiers into canonical
// filesystem paths
package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/shared"
)

// Resolver canonicalizes raw path strings. It has no side effects and is
// deterministic for a fixed filesystem snapshot and environment.
type Resolver struct {
	probeDirs []string
	expand    func(string) string
	stat      func(string) (os.FileInfo, error)
}

// Opts configures a Resolver. ProbeDirs is the ordered list of well-known
// directories searched for bare executable names.
type Opts struct {
	ProbeDirs []string
	Expand    func(string) string
	Stat      func(string) (os.FileInfo, error)
}

// New creates a Resolver. Nil hooks default to [shared.ExpandPath] and
// [os.Stat].
func New(opts Opts) *Resolver {
	if opts.Expand == nil {
		opts.Expand = shared.ExpandPath
	}
	if opts.Stat == nil {
		opts.Stat = os.Stat
	}
	return &Resolver{probeDirs: opts.ProbeDirs, expand: opts.Expand, stat: opts.Stat}
}

// Resolve expands environment references in raw, then either canonicalizes
// an existing absolute path or probes the well-known directories for a bare
// executable name. Anything else fails with [shared.ErrNotFound].
func (r *Resolver) Resolve(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty path", shared.ErrInvalidInput)
	}

	expanded := r.expand(raw)

	if filepath.IsAbs(expanded) {
		if _, err := r.stat(expanded); err == nil {
			return shared.Canonicalize(expanded), nil
		}
		return "", fmt.Errorf("%w: %s", shared.ErrNotFound, expanded)
	}

	if models.IsExecutablePath(expanded) {
		name := filepath.Base(expanded)
		for _, dir := range r.probeDirs {
			candidate := filepath.Join(dir, name)
			if _, err := r.stat(candidate); err == nil {
				return shared.Canonicalize(candidate), nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", shared.ErrNotFound, raw)
}
