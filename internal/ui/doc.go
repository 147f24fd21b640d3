// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a short workflow over the orchestration engine:
//  1. [PinListView] : Browse the enumerated taskbar pins
//  2. [ConfirmView] : Confirm an unpin for the selected item
//  3. [ResultView] : Show which strategy succeeded, or every diagnostic when the chain exhausted
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Enumeration and unpin calls run as [tea.Cmd] functions so the interface stays
// responsive while the engine races its external helpers.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
