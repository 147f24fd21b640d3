package models

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		path string
		want ItemKind
	}{
		{"exe is application", `C:\Windows\notepad.exe`, KindApplication},
		{"uppercase exe is application", `C:\Tools\TOTALCMD.EXE`, KindApplication},
		{"msc is application", `C:\Windows\System32\compmgmt.msc`, KindApplication},
		{"url is url", `C:\Users\dev\example.url`, KindUrl},
		{"lnk is shortcut", `C:\Users\dev\Notepad.lnk`, KindShortcut},
		{"no extension is folder", `C:\Users\dev\Projects`, KindFolder},
		{"document is file", `C:\Users\dev\notes.txt`, KindFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.path); got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindApplication.String(); got != "application" {
		t.Errorf("expected application, got %s", got)
	}
	if got := ItemKind(99).String(); got != "unknown" {
		t.Errorf("out of range kind should stringify as unknown, got %s", got)
	}
}

func TestFold(t *testing.T) {
	a := PinnedItem{Path: `C:\Windows\Notepad.exe`}
	b := PinnedItem{Path: `c:\windows\NOTEPAD.EXE`}
	if a.Key() != b.Key() {
		t.Errorf("case-differing paths should share a key: %q vs %q", a.Key(), b.Key())
	}

	if Fold(`C:\Users\dev\Projects\`) != Fold(`c:\users\dev\projects`) {
		t.Error("trailing separator should not affect identity")
	}
}

func TestIsExecutablePath(t *testing.T) {
	if !IsExecutablePath("notepad.exe") {
		t.Error("notepad.exe should be executable")
	}
	if IsExecutablePath("notes.txt") {
		t.Error("notes.txt should not be executable")
	}
	if IsExecutablePath("notepad") {
		t.Error("bare name without suffix should not be executable")
	}
}
