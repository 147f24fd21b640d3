package taskbar

import "github.com/desertthunder/pinx/internal/platform"

// newerShellOnly gates a strategy on the redesigned taskbar generation.
func newerShellOnly(f platform.Facts) bool { return f.NewerShell() }

// pinStrategies is the static ordered chain for pin operations, most
// reliable mechanism first:
//
//  1. layout-manifest: import a taskbar layout modification (newer shell only)
//  2. shortcut-drop: write the shortcut straight into the pin folder
//  3. taskband-rewrite: shortcut plus clearing the cached registry blob
//  4. pin-verb: last resort, execute the localized context-menu verb
func pinStrategies(ops Ops) []Strategy {
	return []Strategy{
		{Name: "layout-manifest", Applicable: newerShellOnly, Execute: ops.ImportLayout},
		{Name: "shortcut-drop", Execute: ops.DropShortcut},
		{Name: "taskband-rewrite", Execute: ops.RewriteTaskband},
		{Name: "pin-verb", Execute: ops.InvokePinVerb},
	}
}

// unpinStrategies mirrors the pin chain for removal.
func unpinStrategies(ops Ops) []Strategy {
	return []Strategy{
		{Name: "shortcut-remove", Execute: ops.RemoveShortcut},
		{Name: "taskband-clean", Execute: ops.CleanTaskband},
		{Name: "unpin-verb", Execute: ops.InvokeUnpinVerb},
	}
}
