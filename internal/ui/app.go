package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/employee"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/view"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Controller  *view.Controller
	Coordinator *command.Coordinator
	Store       *state.Store
	Reload      func(ctx context.Context) error
	APIURL      string
	PollTick    time.Duration
	ThemeName   string
	PrefsPath   string
	LogPath     string // glog INFO file shown by the log view; empty disables it
	StartupErr  error
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// statusLine is the transient message shown in the header.
type statusLine struct {
	text  string
	level statusLevel
	at    time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	ctrl      *view.Controller
	coord     *command.Coordinator
	store     *state.Store
	reload    func(ctx context.Context) error
	apiURL    string
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Table state, refreshed from the controller
	page        view.Derived
	total       int
	lastUpdated time.Time
	selectedRow int

	// Filter input
	filtering   bool
	filterInput textinput.Model

	// Overlays
	dialogs  *dialogHost
	modal    Modal
	showHelp bool

	// Log view
	showLogs bool
	logView  viewport.Model
	logState logState

	reloading bool
	status    statusLine
}

// New creates a new Bubble Tea model. The coordinator's dialog is pointed at
// the model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	dialogs := &dialogHost{}
	if opts.Coordinator != nil {
		opts.Coordinator.SetDialog(dialogs)
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by id, name or salary"
	filter.CharLimit = 64

	theme := GetTheme(themeName)
	m := Model{
		ctx:         ctx,
		ctrl:        opts.Controller,
		coord:       opts.Coordinator,
		store:       opts.Store,
		reload:      opts.Reload,
		apiURL:      opts.APIURL,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		help:        newHelp(theme),
		theme:       theme,
		filterInput: filter,
		dialogs:     dialogs,
		logState:    newLogState(opts.LogPath),
	}
	if opts.StartupErr != nil {
		m.setStatus(statusError, "Load failed: "+opts.StartupErr.Error())
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-12, 20)
		m.filterInput.Width = max(msg.Width-8, 10)
		m.ready = true
		if m.showLogs {
			m.updateLogViewport()
		}
		return m, nil

	case tickMsg:
		m.sync()
		if m.showLogs {
			m.refreshLogs()
		}
		return m, tickCmd(m.pollTick)

	case reloadDoneMsg:
		m.reloading = false
		if msg.err != nil {
			m.setStatus(statusError, "Reload failed: "+msg.err.Error())
		} else {
			m.setStatus(statusInfo, "Reloaded")
		}
		m.sync()
		return m, nil
	}

	// Cursor blink and other input internals.
	var cmd tea.Cmd
	switch {
	case m.modal != nil:
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
	case m.filtering:
		m.filterInput, cmd = m.filterInput.Update(msg)
	case m.showLogs:
		m.logView, cmd = m.logView.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Open overlays get the key first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.modal != nil {
		return m.handleModalKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Reload):
		cmd = m.startReload()

	case key.Matches(msg, m.keys.Logs):
		m.openLogs()

	case key.Matches(msg, m.keys.Filter):
		if m.ctrl != nil {
			m.filtering = true
			m.filterInput.SetValue(m.ctrl.State().Filter)
			m.filterInput.CursorEnd()
			cmd = m.filterInput.Focus()
		}

	case key.Matches(msg, m.keys.SortID):
		m.toggleSort(employee.FieldID)
	case key.Matches(msg, m.keys.SortName):
		m.toggleSort(employee.FieldName)
	case key.Matches(msg, m.keys.SortSalary):
		m.toggleSort(employee.FieldSalary)
	case key.Matches(msg, m.keys.SortAge):
		m.toggleSort(employee.FieldAge)

	case key.Matches(msg, m.keys.NextPage):
		m.movePage(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.movePage(-1)
	case key.Matches(msg, m.keys.GrowPageSize):
		m.stepPageSize(1)
	case key.Matches(msg, m.keys.ShrinkPageSize):
		m.stepPageSize(-1)

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.page.Rows)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(len(m.page.Rows)-1, 0)

	case key.Matches(msg, m.keys.Add):
		cmd = m.requestAdd()
	case key.Matches(msg, m.keys.Edit):
		cmd = m.requestOnSelected(command.KindEdit)
	case key.Matches(msg, m.keys.Delete):
		cmd = m.requestOnSelected(command.KindDelete)
	}

	m.sync()
	return m, cmd
}

// handleModalKey forwards keys to the open modal and settles the pending
// intent once the user decides.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal, cmd, outcome := m.modal.Update(msg, m.keys)
	m.modal = modal

	switch outcome {
	case modalConfirmed:
		payload := modal.Payload()
		intent, _ := m.coord.Pending()
		m.modal = nil
		if err := m.coord.Confirm(payload); err != nil {
			m.setStatus(statusError, describeError(err))
		} else {
			m.setStatus(statusInfo, confirmMessage(intent, payload))
		}
		m.sync()
	case modalCancelled:
		m.modal = nil
		m.coord.Cancel()
	}
	return m, cmd
}

// handleFilterKey edits the filter text. Every change is applied at once;
// enter keeps the filter, esc clears it.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter("")
		return m, nil
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if value := m.filterInput.Value(); value != before {
		m.applyFilter(value)
	}
	return m, cmd
}

func (m *Model) applyFilter(text string) {
	if m.ctrl == nil {
		return
	}
	m.ctrl.SetFilter(text)
	m.selectedRow = 0
	m.sync()
}

func (m *Model) toggleSort(field employee.Field) {
	if m.ctrl != nil {
		m.ctrl.ToggleSort(field)
	}
}

func (m *Model) movePage(delta int) {
	if m.ctrl == nil {
		return
	}
	st := m.ctrl.State()
	next := st.PageIndex + delta
	if next < 0 || (delta > 0 && next >= m.page.PageCount()) {
		return
	}
	m.ctrl.SetPage(next)
	m.selectedRow = 0
}

func (m *Model) stepPageSize(delta int) {
	if m.ctrl == nil {
		return
	}
	size := nextPageSize(m.ctrl.State().PageSize, delta)
	m.ctrl.SetPageSize(size)
}

// nextPageSize steps through view.PageSizeOptions. A size that is not one of
// the options moves to the nearest option in the requested direction.
func nextPageSize(current, delta int) int {
	opts := view.PageSizeOptions
	i, found := slices.BinarySearch(opts, current)
	switch {
	case delta > 0 && found:
		i++
	case delta < 0:
		i--
	}
	return opts[max(0, min(i, len(opts)-1))]
}

func (m *Model) requestAdd() tea.Cmd {
	if m.coord == nil {
		return nil
	}
	if _, err := m.coord.RequestAdd(employee.Record{ID: m.suggestID()}); err != nil {
		m.setStatus(statusWarn, describeError(err))
		return nil
	}
	return m.openDialog()
}

func (m *Model) requestOnSelected(kind command.Kind) tea.Cmd {
	if m.coord == nil {
		return nil
	}
	r, ok := m.selectedRecord()
	if !ok {
		m.setStatus(statusWarn, "No employee selected")
		return nil
	}
	var err error
	if kind == command.KindDelete {
		_, err = m.coord.RequestDelete(r.ID)
	} else {
		_, err = m.coord.RequestEdit(r.ID)
	}
	if err != nil {
		m.setStatus(statusWarn, describeError(err))
		return nil
	}
	return m.openDialog()
}

// openDialog shows the modal for the intent the coordinator just opened.
func (m *Model) openDialog() tea.Cmd {
	intent, ok := m.dialogs.take()
	if !ok {
		return nil
	}
	modal, cmd := newModal(intent)
	m.modal = modal
	return cmd
}

// suggestID proposes one past the highest stored id for a new record.
func (m Model) suggestID() int64 {
	if m.store == nil {
		return 1
	}
	var top int64
	for _, r := range m.store.All() {
		top = max(top, r.ID)
	}
	return top + 1
}

func (m Model) selectedRecord() (employee.Record, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.page.Rows) {
		return employee.Record{}, false
	}
	return m.page.Rows[m.selectedRow], true
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help = newHelp(m.theme)
	m.help.Width = max(m.width-12, 20)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		glog.Warningf("save prefs: %v", err)
		m.setStatus(statusWarn, "Theme not saved")
	}
}

func (m *Model) startReload() tea.Cmd {
	if m.reload == nil || m.reloading {
		return nil
	}
	m.reloading = true
	return reloadCmd(m.ctx, m.reload)
}

// sync pulls the latest page and store metadata.
func (m *Model) sync() {
	if m.ctrl != nil {
		m.page = m.ctrl.CurrentView()
	}
	if m.store != nil {
		snap := m.store.Snapshot()
		m.total = len(snap.Records)
		m.lastUpdated = snap.LastUpdated
	}
	m.selectedRow = max(0, min(m.selectedRow, len(m.page.Rows)-1))
	if m.status.text != "" && m.status.level != statusError && time.Since(m.status.at) > StatusTTL {
		m.status = statusLine{}
	}
}

func (m *Model) setStatus(level statusLevel, text string) {
	m.status = statusLine{text: text, level: level, at: time.Now()}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderTable(m.width, m.height-2))
	return b.String()
}

func confirmMessage(intent command.Intent, payload employee.Record) string {
	switch intent.Kind {
	case command.KindAdd:
		return fmt.Sprintf("Added #%d %s", payload.ID, payload.Name)
	case command.KindEdit:
		return fmt.Sprintf("Saved #%d", intent.Record.ID)
	case command.KindDelete:
		return fmt.Sprintf("Deleted #%d", intent.Record.ID)
	}
	return "Done"
}

// describeError turns coordinator and store errors into status text.
func describeError(err error) string {
	var dup *state.DuplicateIDError
	var missing *state.NotFoundError
	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("Employee #%d already exists", dup.ID)
	case errors.As(err, &missing):
		return fmt.Sprintf("Employee #%d no longer exists", missing.ID)
	case errors.Is(err, command.ErrBusy):
		return "Finish the open dialog first"
	}
	return err.Error()
}

// Messages

type tickMsg time.Time

type reloadDoneMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func reloadCmd(ctx context.Context, reload func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return reloadDoneMsg{err: reload(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, teaOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
