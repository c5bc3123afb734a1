package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the top-level state of a TUI view.
type ViewState int

const (
	// ViewStateLoading indicates the record batch is still being fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList indicates the main table view is active.
	ViewStateList
	// ViewStateError indicates the fetch failed.
	ViewStateError
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
)

// Key strings used across views.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24
	minTableRows  = 3
)

// Text input limits for the search box.
const (
	searchInputCharLimit = 64
	searchInputWidth     = 40
)

// LoadingState wraps the spinner shown while the batch loads.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading spinner with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &LoadingState{spinner: s, message: "Fetching users..."}
}

// Init returns the spinner tick command.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading returns the loading screen for the given state.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return "Loading..."
	}
	return "\n " + loading.spinner.View() + " " + loading.message + "\n\n"
}
