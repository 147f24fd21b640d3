//go:build !windows

package platform

import (
	"context"
	"fmt"

	"github.com/desertthunder/pinx/internal/shared"
)

// DetectFacts returns zero facts off Windows; only ungated strategies would
// ever be attempted, and those fail against the stub collaborators anyway.
func DetectFacts() Facts {
	return Facts{}
}

// RestartShell is unsupported off Windows.
func RestartShell(ctx context.Context) error {
	return fmt.Errorf("%w: shell restart requires the Windows desktop shell", shared.ErrUnsupported)
}
