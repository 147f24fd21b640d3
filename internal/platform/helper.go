package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/shared"
	"golang.org/x/time/rate"
)

// Helper runs fallback strategy scripts in an external shell process. Every
// run is bounded by a timeout and consecutive launches are paced so a wedged
// shell subsystem cannot be hammered by a retrying chain.
type Helper struct {
	shell   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *log.Logger
}

// HelperOpts configures a [Helper]. Zero values fall back to the embedded
// config defaults.
type HelperOpts struct {
	Shell             string
	Timeout           time.Duration
	LaunchesPerSecond float64
	Logger            *log.Logger
}

// NewHelper creates a Helper for the configured shell executable.
func NewHelper(opts HelperOpts) *Helper {
	if opts.Shell == "" {
		opts.Shell = "powershell.exe"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.LaunchesPerSecond <= 0 {
		opts.LaunchesPerSecond = 2
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Helper{
		shell:   opts.Shell,
		timeout: opts.Timeout,
		limiter: rate.NewLimiter(rate.Limit(opts.LaunchesPerSecond), 1),
		logger:  opts.Logger,
	}
}

// Run writes the script to a throwaway file and executes it, returning the
// combined output. A deadline overrun is reported as [shared.ErrTimeout] so
// the chain executor records the strategy as failed and moves on.
func (h *Helper) Run(ctx context.Context, script string) (string, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrHelperFailed, err)
	}

	path := filepath.Join(os.TempDir(), "pinx-"+shared.GenerateID()+".ps1")
	if err := os.WriteFile(path, []byte(script), 0600); err != nil {
		return "", fmt.Errorf("%w: writing script: %v", shared.ErrHelperFailed, err)
	}
	defer os.Remove(path)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	h.logger.Debug("running helper script", "shell", h.shell, "script", path)

	cmd := exec.CommandContext(ctx, h.shell,
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-File", path)
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("%w: helper exceeded %v", shared.ErrTimeout, h.timeout)
	}
	if err != nil {
		return output, fmt.Errorf("%w: %v: %s", shared.ErrHelperFailed, err, output)
	}

	return output, nil
}
