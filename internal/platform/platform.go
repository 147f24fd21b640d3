// package platform detects OS facts and locates the shell's well-known folders
package platform

import (
	"os"
	"path/filepath"
)

// Facts holds the detected OS version numbers that gate strategy
// applicability. A zero Facts means detection was unavailable and only
// ungated strategies run.
type Facts struct {
	Major uint32
	Minor uint32
	Build uint32
}

// win11FirstBuild is the first build of the redesigned shell whose taskbar
// moved its pinned list into the cloud store.
const win11FirstBuild = 22000

// NewerShell reports whether the detected OS runs the newer taskbar
// generation (Windows 11 and later).
func (f Facts) NewerShell() bool {
	return f.Build >= win11FirstBuild
}

// PinDir returns the per-user pinned-shortcut directory. An explicit
// override wins; otherwise the well-known location under %APPDATA%.
func PinDir(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(os.Getenv("APPDATA"),
		"Microsoft", "Internet Explorer", "Quick Launch", "User Pinned", "TaskBar")
}

// SystemDir returns the OS system directory (System32).
func SystemDir() string {
	root := os.Getenv("SystemRoot")
	if root == "" {
		root = `C:\Windows`
	}
	return filepath.Join(root, "System32")
}

// ProbeDirs returns the ordered directories the resolver probes for bare
// executable names: system directory first, then the 64-bit and 32-bit
// program-files roots.
func ProbeDirs() []string {
	dirs := []string{SystemDir()}

	pf64 := os.Getenv("ProgramW6432")
	if pf64 == "" {
		pf64 = os.Getenv("ProgramFiles")
	}
	if pf64 != "" {
		dirs = append(dirs, pf64)
	}

	if pf32 := os.Getenv("ProgramFiles(x86)"); pf32 != "" {
		dirs = append(dirs, pf32)
	}

	return dirs
}
