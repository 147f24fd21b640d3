package taskbar

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/shared"
)

// Ops is the side-effecting collaborator the strategies drive. Splitting it
// from the chain keeps every strategy independently testable with a fake.
type Ops interface {
	// ImportLayout applies a taskbar layout manifest naming the target.
	ImportLayout(ctx context.Context, target string) error

	// DropShortcut creates a shortcut to the target in the pin directory.
	DropShortcut(ctx context.Context, target string) error

	// RemoveShortcut deletes the pin-directory shortcut resolving to the target.
	RemoveShortcut(ctx context.Context, target string) error

	// RewriteTaskband drops a shortcut and clears the Taskband values so the
	// shell rebuilds its pin list from the folder.
	RewriteTaskband(ctx context.Context, target string) error

	// CleanTaskband removes the shortcut and clears the Taskband values.
	CleanTaskband(ctx context.Context, target string) error

	// InvokePinVerb scans the target's context-menu verbs for a localized
	// pin caption and executes the first match.
	InvokePinVerb(ctx context.Context, target string) error

	// InvokeUnpinVerb is the unpin counterpart of InvokePinVerb.
	InvokeUnpinVerb(ctx context.Context, target string) error
}

// HelperRunner runs one helper script to completion.
type HelperRunner interface {
	Run(ctx context.Context, script string) (string, error)
}

// shellOps implements Ops with helper scripts driving the shell's COM
// surfaces. Each call is one bounded external process.
type shellOps struct {
	helper HelperRunner
	pinDir string
	logger *log.Logger
}

// NewShellOps creates the production Ops over the given helper runner and
// pin directory.
func NewShellOps(helper HelperRunner, pinDir string, logger *log.Logger) Ops {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &shellOps{helper: helper, pinDir: pinDir, logger: logger}
}

// psQuote escapes a string for a single-quoted PowerShell literal.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// shortcutName derives the pin-directory shortcut filename for a target.
func shortcutName(target string) string {
	base := filepath.Base(filepath.ToSlash(target))
	if i := strings.LastIndexAny(base, `\/`); i >= 0 {
		base = base[i+1:]
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".lnk"
}

// layoutManifest is the modification template the newer shell imports. The
// shortcut it references is created by the same script, so the manifest
// never names a missing link.
const layoutManifest = `<?xml version="1.0" encoding="utf-8"?>
<LayoutModificationTemplate
    xmlns="http://schemas.microsoft.com/Start/2014/LayoutModification"
    xmlns:defaultlayout="http://schemas.microsoft.com/Start/2014/FullDefaultLayout"
    xmlns:taskbar="http://schemas.microsoft.com/Start/2014/TaskbarLayout"
    Version="1">
  <CustomTaskbarLayoutCollection PinListPlacement="Append">
    <defaultlayout:TaskbarLayout>
      <taskbar:TaskbarPinList>
        <taskbar:DesktopApp DesktopApplicationLinkPath="{{LINK}}" />
      </taskbar:TaskbarPinList>
    </defaultlayout:TaskbarLayout>
  </CustomTaskbarLayoutCollection>
</LayoutModificationTemplate>`

func (o *shellOps) ImportLayout(ctx context.Context, target string) error {
	link := filepath.Join(o.pinDir, shortcutName(target))
	manifest := strings.ReplaceAll(layoutManifest, "{{LINK}}", link)
	manifestPath := "$env:TEMP\\pinx-layout-" + shared.GenerateID() + ".xml"

	script := fmt.Sprintf(`$ErrorActionPreference = 'Stop'
$ws = New-Object -ComObject WScript.Shell
$s = $ws.CreateShortcut('%s')
$s.TargetPath = '%s'
$s.Save()
$manifest = @'
%s
'@
$path = "%s"
Set-Content -LiteralPath $path -Value $manifest -Encoding UTF8
Import-StartLayout -LayoutPath $path -MountPath "$env:SystemDrive\"
Remove-Item -LiteralPath $path -Force
`, psQuote(link), psQuote(target), manifest, manifestPath)

	_, err := o.helper.Run(ctx, script)
	return err
}

func (o *shellOps) DropShortcut(ctx context.Context, target string) error {
	link := filepath.Join(o.pinDir, shortcutName(target))
	script := fmt.Sprintf(`$ErrorActionPreference = 'Stop'
$ws = New-Object -ComObject WScript.Shell
$s = $ws.CreateShortcut('%s')
$s.TargetPath = '%s'
$s.Save()
`, psQuote(link), psQuote(target))

	_, err := o.helper.Run(ctx, script)
	return err
}

// removeScript deletes the shortcut whose resolved target matches; exit 3
// signals that nothing in the folder pointed at the target.
func (o *shellOps) removeScript(target string) string {
	return fmt.Sprintf(`$ErrorActionPreference = 'Stop'
$ws = New-Object -ComObject WScript.Shell
Get-ChildItem -LiteralPath '%s' -Filter *.lnk | ForEach-Object {
  $s = $ws.CreateShortcut($_.FullName)
  if ($s.TargetPath -ieq '%s') { Remove-Item -LiteralPath $_.FullName -Force; exit 0 }
}
exit 3
`, psQuote(o.pinDir), psQuote(target))
}

func (o *shellOps) RemoveShortcut(ctx context.Context, target string) error {
	_, err := o.helper.Run(ctx, o.removeScript(target))
	return err
}

// clearTaskband drops the cached pin blob so the shell re-reads the
// shortcut folder on restart. Half of the blob surviving a failed write is
// accepted; there is no transactional registry to lean on.
const clearTaskband = `$taskband = 'HKCU:\Software\Microsoft\Windows\CurrentVersion\Explorer\Taskband'
if (Test-Path $taskband) {
  Remove-ItemProperty -Path $taskband -Name Favorites -ErrorAction SilentlyContinue
  Remove-ItemProperty -Path $taskband -Name FavoritesResolve -ErrorAction SilentlyContinue
}
`

func (o *shellOps) RewriteTaskband(ctx context.Context, target string) error {
	link := filepath.Join(o.pinDir, shortcutName(target))
	script := fmt.Sprintf(`$ErrorActionPreference = 'Stop'
$ws = New-Object -ComObject WScript.Shell
$s = $ws.CreateShortcut('%s')
$s.TargetPath = '%s'
$s.Save()
%s`, psQuote(link), psQuote(target), clearTaskband)

	_, err := o.helper.Run(ctx, script)
	return err
}

func (o *shellOps) CleanTaskband(ctx context.Context, target string) error {
	script := o.removeScript(target) + clearTaskband
	_, err := o.helper.Run(ctx, script)
	return err
}

// verbScript enumerates the item's context-menu verbs and executes the
// first caption matching any of the localized patterns; exit 3 means no
// verb matched.
func verbScript(target string, captions []string) string {
	quoted := make([]string, len(captions))
	for i, caption := range captions {
		quoted[i] = "'" + psQuote(caption) + "'"
	}

	dir := filepath.Dir(target)
	name := filepath.Base(target)

	return fmt.Sprintf(`$ErrorActionPreference = 'Stop'
$patterns = @(%s)
$shell = New-Object -ComObject Shell.Application
$folder = $shell.Namespace('%s')
if ($null -eq $folder) { exit 2 }
$item = $folder.ParseName('%s')
if ($null -eq $item) { exit 2 }
foreach ($verb in $item.Verbs()) {
  $caption = $verb.Name.Replace('&', '').ToLower()
  foreach ($pattern in $patterns) {
    if ($caption.Contains($pattern)) { $verb.DoIt(); exit 0 }
  }
}
exit 3
`, strings.Join(quoted, ", "), psQuote(dir), psQuote(name))
}

func (o *shellOps) InvokePinVerb(ctx context.Context, target string) error {
	_, err := o.helper.Run(ctx, verbScript(target, pinVerbCaptions()))
	return err
}

func (o *shellOps) InvokeUnpinVerb(ctx context.Context, target string) error {
	_, err := o.helper.Run(ctx, verbScript(target, unpinVerbCaptions()))
	return err
}
