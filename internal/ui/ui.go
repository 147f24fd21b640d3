package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pinx/internal/models"
)

// Engine is the slice of the orchestration engine the TUI needs.
type Engine interface {
	Enumerate(ctx context.Context) ([]models.PinnedItem, error)
	Unpin(ctx context.Context, identifier string) (*models.OperationResult, error)
}

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PinListView ViewState = iota
	ConfirmView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	engine   Engine
	width    int
	height   int
	pinList  list.Model
	pins     []models.PinnedItem
	selected *models.PinnedItem
	result   *models.OperationResult
	err      error
	help     help.Model
	keys     keyMap
}

type pinsFetchedMsg struct {
	pins []models.PinnedItem
	err  error
}

type unpinCompleteMsg struct {
	result *models.OperationResult
	err    error
}

// NewModel creates a new TUI model over the orchestration engine.
func NewModel(ctx context.Context, engine Engine) *Model {
	return &Model{
		ctx:    ctx,
		view:   PinListView,
		engine: engine,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by enumerating the current pins.
func (m *Model) Init() tea.Cmd {
	return m.fetchPins()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.pinList.Width() == 0 {
			m.pinList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PinListView:
			return m.handlePinListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case pinsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.pins = msg.pins
		items := make([]list.Item, len(msg.pins))
		for i, pin := range msg.pins {
			items[i] = pinItem{item: pin}
		}
		m.pinList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.pinList.Title = fmt.Sprintf("Taskbar Pins (%d)", len(msg.pins))
		m.pinList.SetSize(m.width-4, m.height-8)
		return m, nil

	case unpinCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PinListView:
		return m.renderPinList()
	case ConfirmView:
		return m.renderConfirm()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePinListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchPins()
	case key.Matches(msg, m.keys.enter):
		if selected := m.pinList.SelectedItem(); selected != nil {
			if pin, ok := selected.(pinItem); ok {
				item := pin.item
				m.selected = &item
				m.view = ConfirmView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pinList, cmd = m.pinList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.selected = nil
		m.view = PinListView
		return m, nil
	case "y":
		return m, m.startUnpin()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r", "esc":
		m.view = PinListView
		m.selected = nil
		m.result = nil
		m.err = nil
		return m, m.fetchPins()
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == PinListView {
		m.pinList, cmd = m.pinList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPins() tea.Cmd {
	return func() tea.Msg {
		pins, err := m.engine.Enumerate(m.ctx)
		return pinsFetchedMsg{pins: pins, err: err}
	}
}

func (m *Model) startUnpin() tea.Cmd {
	target := m.selected.Path
	return func() tea.Msg {
		result, err := m.engine.Unpin(m.ctx, target)
		return unpinCompleteMsg{result: result, err: err}
	}
}

func (m *Model) renderPinList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.pinList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Unpin '%s' from the taskbar?", m.selected.Name))
	detail := styles.help.Render(m.selected.Path)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n%s\n\n%s", title, detail, helpView)
}

func (m *Model) renderResult() string {
	var body string
	switch {
	case m.err != nil:
		body = styles.err.Render(fmt.Sprintf("Unpin failed: %v", m.err))
	case m.result != nil && m.result.Succeeded:
		body = styles.ok.Render(fmt.Sprintf("Unpinned via %s", m.result.StrategyUsed))
	default:
		body = styles.err.Render("Every strategy failed")
		if m.result != nil {
			for _, diag := range m.result.Diagnostics {
				body += "\n" + styles.warn.Render(fmt.Sprintf("  %s: %s", diag.Name, diag.Reason))
			}
		}
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.refresh, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}
