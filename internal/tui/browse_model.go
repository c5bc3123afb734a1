package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/roster/internal/engine"
	"github.com/rshade/roster/internal/fetch"
)

// DebounceInterval is the quiet window after the last search keystroke
// before the query is committed to the filter.
const DebounceInterval = 300 * time.Millisecond

// usersLoadedMsg is sent when the one-shot batch fetch resolves.
type usersLoadedMsg struct {
	records []engine.Record
	err     error
}

// debounceMsg is sent when a search quiet timer fires. The generation
// identifies the keystroke that scheduled it; stale generations are
// dropped by the view-state controller.
type debounceMsg struct {
	gen int
}

// UserFetcher is a context-aware function that retrieves the user batch.
// The fetcher should honor ctx cancellation.
type UserFetcher func(ctx context.Context) ([]engine.Record, error)

// BrowseModel is the Bubble Tea model for the user directory browser.
type BrowseModel struct {
	// View state
	state   ViewState
	view    *engine.View
	records []engine.Record // Source of truth once loaded
	result  engine.Result   // Derived page for display

	// Fetch lifecycle
	coord    *fetch.Coordinator
	fetchCmd tea.Cmd

	// Interactive components
	table     table.Model
	textInput textinput.Model
	searching bool

	// Display configuration
	width  int
	height int

	// Loading and error state
	loading    *LoadingState
	errMessage string
}

// NewBrowseModel creates a browser model that starts in the loading state
// and fetches the batch through fetcher. Cancelling happens on quit: the
// coordinator aborts the request context and suppresses any late result.
func NewBrowseModel(ctx context.Context, fetcher UserFetcher, pageSize int) *BrowseModel {
	coord := fetch.NewCoordinator()
	fetchCtx := coord.Start(ctx)

	m := &BrowseModel{
		state:     ViewStateLoading,
		view:      engine.NewView(pageSize),
		coord:     coord,
		textInput: newSearchInput(),
		loading:   NewLoadingState(),
		width:     defaultWidth,
		height:    defaultHeight,
		fetchCmd: func() tea.Msg {
			records, err := fetcher(fetchCtx)
			return usersLoadedMsg{records: records, err: err}
		},
	}
	m.refresh()
	return m
}

// newSearchInput creates the text input for the search box.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search users..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	return ti
}

// Init starts the spinner and the fetch.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd)
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil

	case usersLoadedMsg:
		return m.handleLoaded(msg)

	case debounceMsg:
		if m.view.CommitQuery(msg.gen) {
			m.refresh()
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateError, ViewStateQuitting:
		return m.handleQuitUpdate(msg)
	default:
		return m, nil
	}
}

// handleLoaded applies the fetch outcome through the coordinator. A result
// arriving after cancellation changes nothing.
func (m *BrowseModel) handleLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.coord.Resolve(msg.records, msg.err) {
		return m, nil
	}

	state := m.coord.State()
	if state.Status == fetch.StatusFailed {
		m.errMessage = state.ErrMessage
		m.state = ViewStateError
		return m, nil
	}

	m.records = state.Records
	m.state = ViewStateList
	m.refresh()
	return m, nil
}

// handleSearchInput routes messages to the text input while the search box
// has focus. Every change to the input restarts the quiet timer with a
// fresh generation, which cancels any pending commit.
func (m *BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.searching = false
			m.textInput.Blur()
			return m, nil
		case keyCtrlC:
			return m.quit()
		}
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if value := m.textInput.Value(); value != before {
		gen := m.view.SetQuery(value)
		return m, tea.Batch(cmd, debounceTick(gen))
	}
	return m, cmd
}

// debounceTick schedules the quiet-timer fire for one query generation.
func debounceTick(gen int) tea.Cmd {
	return tea.Tick(DebounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

// handleListUpdate processes keys in the main table view.
func (m *BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()

	case keySlash:
		m.searching = true
		m.textInput.Focus()
		return m, textinput.Blink

	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			gen := m.view.SetQuery("")
			return m, debounceTick(gen)
		}
		return m, nil

	case "1":
		m.setSort(engine.SortByFirstName)
		return m, nil
	case "2":
		m.setSort(engine.SortByGender)
		return m, nil
	case "3":
		m.setSort(engine.SortByAge)
		return m, nil
	case "4":
		m.setSort(engine.SortByEmail)
		return m, nil

	case "left", "h":
		m.view.SetPage(m.view.Page()-1, m.result.Meta.TotalPages)
		m.refresh()
		return m, nil
	case "right", "l":
		m.view.SetPage(m.view.Page()+1, m.result.Meta.TotalPages)
		m.refresh()
		return m, nil

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// handleQuitUpdate only accepts quit keys once the view is terminal.
func (m *BrowseModel) handleQuitUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC, keyEnter, keyEsc:
			return m.quit()
		}
	}
	return m, nil
}

// quit cancels any in-flight fetch and exits.
func (m *BrowseModel) quit() (tea.Model, tea.Cmd) {
	m.coord.Cancel()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

// setSort forwards a sort selection to the controller and recomputes.
func (m *BrowseModel) setSort(key engine.SortKey) {
	m.view.SetSort(key)
	m.refresh()
}

// refresh recomputes the derived page and rebuilds the table.
func (m *BrowseModel) refresh() {
	m.result = m.view.Apply(m.records)
	m.rebuildTable()
}

// rebuildTable reconstructs the table model from the current page.
func (m *BrowseModel) rebuildTable() {
	m.table = newUserTable(m.result.Page, m.view.SortKey(), m.view.SortDirection())
}

// Result exposes the current derived view for rendering and tests.
func (m *BrowseModel) Result() engine.Result {
	return m.result
}

// View renders the current view.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return renderErrorView(m.errMessage)
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}
