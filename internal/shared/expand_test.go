package shared

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("SystemRoot", `C:\Windows`)
	t.Setenv("PINX_TEST_DIR", "tools")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"windows style", `%SystemRoot%\notepad.exe`, `C:\Windows\notepad.exe`},
		{"unix style", `$PINX_TEST_DIR/bin`, "tools/bin"},
		{"braced unix style", `${PINX_TEST_DIR}/bin`, "tools/bin"},
		{"unknown windows var untouched", `%NoSuchVarHere%\x`, `%NoSuchVarHere%\x`},
		{"unknown unix var untouched", `$NoSuchVarHere/x`, `$NoSuchVarHere/x`},
		{"no references", `C:\plain\path`, `C:\plain\path`},
		{"two references", `%SystemRoot%\%PINX_TEST_DIR%`, `C:\Windows\tools`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.raw); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}

	t.Run("home expansion", func(t *testing.T) {
		got := ExpandPath("~/pins")
		if strings.HasPrefix(got, "~") {
			t.Errorf("leading tilde should be expanded, got %q", got)
		}
	})
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "a", "..", "b")
	want := filepath.Join(dir, "b")
	if got := Canonicalize(messy); got != want {
		t.Errorf("Canonicalize(%q) = %q, want %q", messy, got, want)
	}

	if !filepath.IsAbs(Canonicalize("relative/path")) {
		t.Error("canonical form should be absolute")
	}
}
