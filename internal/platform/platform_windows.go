//go:build windows

package platform

import (
	"context"
	"fmt"
	"os/exec"

	"golang.org/x/sys/windows"
)

// DetectFacts reads the true OS version numbers. RtlGetNtVersionNumbers is
// immune to the compatibility shims that lie to GetVersionEx.
func DetectFacts() Facts {
	var major, minor, build uint32
	windows.RtlGetNtVersionNumbers(&major, &minor, &build)
	return Facts{Major: major, Minor: minor, Build: build & 0xFFFF}
}

// RestartShell kills and relaunches the explorer shell so taskbar changes
// become visible. Fire and forget: the relaunch is not awaited.
func RestartShell(ctx context.Context) error {
	kill := exec.CommandContext(ctx, "taskkill.exe", "/f", "/im", "explorer.exe")
	if out, err := kill.CombinedOutput(); err != nil {
		return fmt.Errorf("stopping explorer: %v: %s", err, out)
	}

	start := exec.Command("explorer.exe")
	if err := start.Start(); err != nil {
		return fmt.Errorf("relaunching explorer: %w", err)
	}

	return nil
}
