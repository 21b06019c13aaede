// Package app contains the root Bubble Tea model that wires the
// editor, file tree, output pane, and overlays together.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/config"
	"slate/internal/keys"
	"slate/internal/log"
	"slate/internal/paths"
	"slate/internal/runner"
	"slate/internal/session"
	"slate/internal/syntax"
	"slate/internal/ui/editor"
	"slate/internal/ui/filetree"
	"slate/internal/ui/gotoline"
	"slate/internal/ui/help"
	"slate/internal/ui/logoverlay"
	"slate/internal/ui/modal"
	"slate/internal/ui/output"
	"slate/internal/ui/preview"
	"slate/internal/ui/statusbar"
	"slate/internal/ui/styles"
	"slate/internal/ui/themepicker"
	"slate/internal/ui/toaster"
	"slate/internal/watcher"
)

// focusArea identifies which pane receives keyboard input.
type focusArea int

const (
	focusEditor focusArea = iota
	focusSidebar
	focusOutput
)

// overlayKind identifies the active modal overlay, if any.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayGoto
	overlayTheme
	overlayHelp
	overlayConfirm
	overlayNewFile
	overlayPreview
)

// confirmAction says what a confirmed modal should do.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmQuit
	confirmCloseTab
)

// Options configures the root model.
type Options struct {
	Config     config.Config
	ConfigPath string
	WorkDir    string
	OpenFiles  []string // files to open on startup, before session restore
}

// Model is the root application model.
type Model struct {
	cfg        config.Config
	configPath string
	workDir    string

	tabs   []*tab
	active int

	editor      editor.Model
	classifier  *syntax.Classifier
	highlighter *syntax.Highlighter

	tree        *filetree.Model
	out         output.Model
	status      statusbar.Model
	toast       toaster.Model
	logs        logoverlay.Model
	showSidebar bool
	focus       focusArea
	themeName   string

	overlay        overlayKind
	gotoOverlay    gotoline.Model
	themeOverlay   themepicker.Model
	helpOverlay    help.Model
	modalOverlay   modal.Model
	previewOverlay preview.Model
	pendingAction  confirmAction
	pendingTab     int

	run      *runner.Run
	runFile  string
	runBytes int64

	history *session.History
	watchCh <-chan []string
	watch   *watcher.Watcher

	logListener  *log.LogListener
	listenCancel context.CancelFunc

	width  int
	height int
}

// runEventMsg carries one event from the active run's event stream.
type runEventMsg struct {
	event runner.Event
	ok    bool
}

// runErrorMsg carries an asynchronous run error (timeout, read failure).
type runErrorMsg struct {
	err error
	ok  bool
}

// watchMsg carries a batch of changed paths from the file watcher.
type watchMsg struct {
	paths []string
	ok    bool
}

// checkResultMsg carries the outcome of a syntax check.
type checkResultMsg struct {
	issue *runner.SyntaxIssue
	err   error
}

// New builds the root model. Theme, session state, and run history are
// restored best-effort; failures degrade to defaults and are logged.
func New(opts Options) *Model {
	cfg := opts.Config

	state := session.LoadState(paths.SessionFile())

	themeName := cfg.Theme.Preset
	if state.CurrentTheme != "" {
		themeName = state.CurrentTheme
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: themeName}); err != nil {
		log.Warn(log.CatConfig, "unknown theme preset, using default", "preset", themeName)
		themeName = "default"
		_ = styles.ApplyTheme(styles.ThemeConfig{})
	}

	kws := syntax.DefaultKeywordSet()
	if len(cfg.Keywords) > 0 {
		kws = syntax.NewKeywordSet(cfg.Keywords)
	}
	classifier := syntax.NewClassifier(kws)
	highlighter := syntax.NewHighlighter(classifier)

	ed := editor.New(highlighter)
	ed.SetShowLineNumbers(cfg.UI.ShowLineNumbers)
	ed.Focus()

	workDir := opts.WorkDir
	if workDir == "" {
		workDir, _ = os.Getwd()
	}

	m := &Model{
		cfg:         cfg,
		configPath:  opts.ConfigPath,
		workDir:     workDir,
		editor:      ed,
		classifier:  classifier,
		highlighter: highlighter,
		out:         output.New(),
		status:      statusbar.New(),
		toast:       toaster.New(),
		logs:        logoverlay.New(),
		showSidebar: true,
		themeName:   themeName,
	}

	tree, err := filetree.New(workDir, cfg.UI.ShowHiddenFiles)
	if err != nil {
		log.ErrorErr(log.CatUI, "file tree unavailable", err, "dir", workDir)
		m.showSidebar = false
	} else {
		m.tree = tree
	}

	if hist, err := openHistory(); err != nil {
		log.ErrorErr(log.CatSession, "run history unavailable", err)
	} else {
		m.history = hist
	}

	for _, path := range opts.OpenFiles {
		if err := m.openFile(path); err != nil {
			log.ErrorErr(log.CatSession, "skipping file from command line", err, "path", path)
		}
	}
	for _, path := range state.OpenFiles {
		if m.tabIndex(path) >= 0 {
			continue
		}
		if err := m.openFile(path); err != nil {
			log.Warn(log.CatSession, "skipping file from previous session", "path", path)
		}
	}
	if len(m.tabs) == 0 {
		m.newTab()
	}
	m.activateTab(len(m.tabs) - 1)

	if cfg.AutoRefresh {
		m.startWatcher()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.listenCancel = cancel
	m.logListener = log.NewListener(ctx)

	return m
}

func openHistory() (*session.History, error) {
	if err := paths.EnsureStateDir(); err != nil {
		return nil, err
	}
	return session.OpenHistory(paths.HistoryDB())
}

func (m *Model) startWatcher() {
	w, err := watcher.New(watcher.DefaultConfig(m.workDir))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "watcher unavailable", err)
		return
	}
	ch, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "watcher failed to start", err)
		return
	}
	m.watch = w
	m.watchCh = ch
}

// Init starts the watcher and log listeners.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watchCh != nil {
		cmds = append(cmds, waitForChanges(m.watchCh))
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

func waitForChanges(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		batch, ok := <-ch
		return watchMsg{paths: batch, ok: ok}
	}
}

// Close releases resources held outside the Bubble Tea loop.
func (m *Model) Close() error {
	m.saveSession()
	if m.run != nil && m.run.IsRunning() {
		m.run.Cancel()
		m.run.Wait()
	}
	if m.listenCancel != nil {
		m.listenCancel()
	}
	var err error
	if m.watch != nil {
		err = m.watch.Stop()
	}
	if m.history != nil {
		if closeErr := m.history.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

func (m *Model) saveSession() {
	var open []string
	for _, t := range m.tabs {
		if t.path != "" {
			open = append(open, t.path)
		}
	}
	state := session.State{
		OpenFiles:    open,
		CurrentTheme: m.themeName,
		LastDir:      m.workDir,
	}
	if err := paths.EnsureStateDir(); err != nil {
		log.ErrorErr(log.CatSession, "cannot create state dir", err)
		return
	}
	if err := session.SaveState(paths.SessionFile(), state); err != nil {
		log.ErrorErr(log.CatSession, "session save failed", err)
	}
}

// Update routes messages to overlays, panes, and run machinery.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case toaster.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case logoverlay.CloseMsg:
		return m, nil

	case preview.CloseMsg:
		m.overlay = overlayNone
		return m, nil

	case log.LogEvent:
		m.logs.Refresh()
		if m.logListener != nil {
			return m, m.logListener.Listen()
		}
		return m, nil

	case runEventMsg:
		return m.handleRunEvent(msg)

	case runErrorMsg:
		return m.handleRunError(msg)

	case watchMsg:
		return m.handleWatch(msg)

	case checkResultMsg:
		return m.handleCheckResult(msg)

	case gotoline.SubmitMsg:
		m.overlay = overlayNone
		if err := m.editor.GotoLine(msg.Line); err != nil {
			return m, m.showToast(err.Error(), toaster.LevelError)
		}
		m.syncStatus()
		return m, nil

	case gotoline.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case themepicker.ApplyMsg:
		m.overlay = overlayNone
		return m, m.applyTheme(msg.Preset)

	case themepicker.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case modal.SubmitMsg:
		return m, m.confirmModal(msg)

	case modal.CancelMsg:
		m.overlay = overlayNone
		m.pendingAction = confirmNone
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToFocused(msg)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	m.toast = m.toast.SetSize(width, height)
	m.logs.SetSize(width, height)
	m.gotoOverlay = m.gotoOverlay.SetSize(width, height)
	m.themeOverlay = m.themeOverlay.SetSize(width, height)
	m.helpOverlay = m.helpOverlay.SetSize(width, height)
	m.modalOverlay.SetSize(width, height)
	m.previewOverlay = m.previewOverlay.SetSize(width, height)
	m.status = m.status.SetWidth(width)

	m.layoutPanes()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs.Visible() {
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch {
	case key.Matches(msg, keys.Global.Quit):
		return m.requestQuit()

	case key.Matches(msg, keys.Global.Save):
		return m, m.saveActiveTab()

	case key.Matches(msg, keys.Global.Run):
		return m, m.startRun()

	case key.Matches(msg, keys.Global.CancelRun):
		if m.run != nil && m.run.IsRunning() {
			m.run.Cancel()
			return m, nil
		}
		// ctrl+c with no active run falls through to quit, matching
		// terminal convention.
		return m.requestQuit()

	case key.Matches(msg, keys.Global.CheckSyntax):
		return m, m.checkSyntax()

	case key.Matches(msg, keys.Global.Preview):
		return m.openPreview()

	case key.Matches(msg, keys.Global.GotoLine):
		m.overlay = overlayGoto
		m.gotoOverlay = gotoline.New(m.activeBuffer().LineCount()).SetSize(m.width, m.height)
		return m, nil

	case key.Matches(msg, keys.Global.Encrypt):
		m.transformActiveTab()
		return m, m.showToast("applied XOR transform", toaster.LevelInfo)

	case key.Matches(msg, keys.Global.NewFile):
		return m.promptNewFile()

	case key.Matches(msg, keys.Global.NextTab):
		m.activateTab((m.active + 1) % len(m.tabs))
		return m, nil

	case key.Matches(msg, keys.Global.PrevTab):
		m.activateTab((m.active + len(m.tabs) - 1) % len(m.tabs))
		return m, nil

	case key.Matches(msg, keys.Global.CloseTab):
		return m.requestCloseTab(m.active)

	case key.Matches(msg, keys.Global.CyclePane):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, keys.Global.ToggleSidebar):
		m.showSidebar = !m.showSidebar
		if !m.showSidebar && m.focus == focusSidebar {
			m.setFocus(focusEditor)
		}
		m.layoutPanes()
		return m, nil

	case key.Matches(msg, keys.Global.ToggleHidden):
		if m.tree != nil {
			m.tree.SetShowHidden(!m.tree.ShowHidden())
		}
		return m, nil

	case key.Matches(msg, keys.Global.ThemePicker):
		m.overlay = overlayTheme
		m.themeOverlay = themepicker.New(m.themeName).SetSize(m.width, m.height)
		return m, nil

	case key.Matches(msg, keys.Global.ToggleLogs):
		m.logs.Toggle()
		return m, nil

	case key.Matches(msg, keys.Global.Help):
		m.overlay = overlayHelp
		m.helpOverlay = help.New().SetSize(m.width, m.height)
		return m, nil
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.routeToFocused(msg)
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tree == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Sidebar.Up):
		m.tree.MoveCursor(-1)
	case key.Matches(msg, keys.Sidebar.Down):
		m.tree.MoveCursor(1)
	case key.Matches(msg, keys.Sidebar.Open):
		path, err := m.tree.Activate()
		if err != nil {
			return m, m.showToast(err.Error(), toaster.LevelError)
		}
		if path != "" {
			if err := m.openFile(path); err != nil {
				return m, m.showToast("could not open "+filepath.Base(path), toaster.LevelError)
			}
			m.activateTab(len(m.tabs) - 1)
			m.setFocus(focusEditor)
		}
	case key.Matches(msg, keys.Sidebar.Collapse):
		m.tree.Collapse()
	case key.Matches(msg, keys.Sidebar.Refresh):
		m.tree.Refresh()
	}
	return m, nil
}

func (m *Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
		m.syncStatus()
	case focusOutput:
		m.out, cmd = m.out.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayGoto:
		var cmd tea.Cmd
		m.gotoOverlay, cmd = m.gotoOverlay.Update(msg)
		return m, cmd

	case overlayTheme:
		var cmd tea.Cmd
		m.themeOverlay, cmd = m.themeOverlay.Update(msg)
		return m, cmd

	case overlayHelp:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "q", "f1":
				m.overlay = overlayNone
			}
		}
		return m, nil

	case overlayConfirm, overlayNewFile:
		var cmd tea.Cmd
		m.modalOverlay, cmd = m.modalOverlay.Update(msg)
		return m, cmd

	case overlayPreview:
		var cmd tea.Cmd
		m.previewOverlay, cmd = m.previewOverlay.Update(msg)
		return m, cmd
	}
	return m, nil
}

// openPreview shows the active buffer rendered as markdown. Non-md
// files get a toast instead.
func (m *Model) openPreview() (tea.Model, tea.Cmd) {
	t := m.activeTab()
	if !strings.EqualFold(filepath.Ext(t.name()), ".md") {
		return m, m.showToast("preview works on markdown files", toaster.LevelInfo)
	}

	p, err := preview.New(t.name(), t.buf.Text(), m.width, m.height)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed", err, "file", t.name())
		return m, m.showToast("could not render preview", toaster.LevelError)
	}
	m.previewOverlay = p
	m.overlay = overlayPreview
	return m, nil
}

func (m *Model) applyTheme(preset string) tea.Cmd {
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: preset}); err != nil {
		return m.showToast("unknown theme: "+preset, toaster.LevelError)
	}
	m.themeName = preset
	if m.configPath != "" {
		if err := config.SaveThemePreset(m.configPath, preset); err != nil {
			log.ErrorErr(log.CatConfig, "theme save failed", err, "preset", preset)
			return m.showToast("theme applied but not saved", toaster.LevelWarn)
		}
	}
	return m.showToast("theme: "+preset, toaster.LevelInfo)
}

func (m *Model) confirmModal(msg modal.SubmitMsg) tea.Cmd {
	action := m.pendingAction
	m.overlay = overlayNone
	m.pendingAction = confirmNone

	switch action {
	case confirmQuit:
		return tea.Quit

	case confirmCloseTab:
		m.closeTab(m.pendingTab)
		return nil
	}

	if name, ok := msg.Values["name"]; ok {
		return m.createFile(name)
	}
	return nil
}

func (m *Model) requestQuit() (tea.Model, tea.Cmd) {
	if !m.anyModified() {
		return m, tea.Quit
	}
	m.overlay = overlayConfirm
	m.pendingAction = confirmQuit
	m.modalOverlay = modal.New(modal.Config{
		Title:          "Quit",
		Message:        "There are unsaved changes. Quit anyway?",
		ConfirmVariant: modal.ButtonDanger,
	})
	m.modalOverlay.SetSize(m.width, m.height)
	return m, nil
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusEditor:
		if m.showSidebar && m.tree != nil {
			m.setFocus(focusSidebar)
		} else {
			m.setFocus(focusOutput)
		}
	case focusSidebar:
		m.setFocus(focusOutput)
	case focusOutput:
		m.setFocus(focusEditor)
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	if f == focusOutput {
		m.out.Focus()
	} else {
		m.out.Blur()
	}
}

func (m *Model) showToast(message string, level toaster.Level) tea.Cmd {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(message, level)
	return cmd
}

func (m *Model) syncStatus() {
	t := m.activeTab()
	m.status.FilePath = t.path
	m.status.Modified = t.buf.Modified()
	row, col := m.editor.CursorPosition()
	m.status.Line = row + 1
	m.status.Col = col + 1
	m.status.LineCount = t.buf.LineCount()
	m.status.Interpreter = m.cfg.Interpreter
	m.status.ThemeName = m.themeName
	m.status.Running = m.run != nil && m.run.IsRunning()
}

func (m *Model) handleWatch(msg watchMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		m.watchCh = nil
		return m, nil
	}

	if m.tree != nil {
		m.tree.Refresh()
	}

	var cmds []tea.Cmd
	for _, changed := range msg.paths {
		idx := m.tabIndex(changed)
		if idx < 0 {
			continue
		}
		t := m.tabs[idx]
		if t.buf.Modified() {
			cmds = append(cmds, m.showToast(
				filepath.Base(changed)+" changed on disk; keeping unsaved edits",
				toaster.LevelWarn))
			continue
		}
		if err := m.reloadTab(idx); err != nil {
			log.ErrorErr(log.CatWatcher, "reload after external change failed", err, "path", changed)
			continue
		}
		cmds = append(cmds, m.showToast(
			filepath.Base(changed)+" reloaded", toaster.LevelInfo))
	}

	cmds = append(cmds, waitForChanges(m.watchCh))
	return m, tea.Batch(cmds...)
}
