package app

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/buffer"
	"slate/internal/cipher"
	"slate/internal/log"
	"slate/internal/ui/modal"
	"slate/internal/ui/toaster"
)

// tab is one open buffer. path is empty until the buffer is saved.
type tab struct {
	path string
	buf  *buffer.Buffer
}

func (t *tab) name() string {
	if t.path == "" {
		return "untitled"
	}
	return filepath.Base(t.path)
}

func (m *Model) activeTab() *tab {
	return m.tabs[m.active]
}

func (m *Model) activeBuffer() *buffer.Buffer {
	return m.activeTab().buf
}

func (m *Model) anyModified() bool {
	for _, t := range m.tabs {
		if t.buf.Modified() {
			return true
		}
	}
	return false
}

// tabIndex returns the index of the tab holding path, or -1.
func (m *Model) tabIndex(path string) int {
	for i, t := range m.tabs {
		if t.path != "" && t.path == path {
			return i
		}
	}
	return -1
}

// newTab appends an empty untitled tab.
func (m *Model) newTab() {
	m.tabs = append(m.tabs, &tab{buf: buffer.New()})
}

// openFile loads path into a new tab, or just switches to it if the
// file is already open. The new tab becomes last; callers activate it.
func (m *Model) openFile(path string) error {
	if idx := m.tabIndex(path); idx >= 0 {
		m.activateTab(idx)
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: user picked the file
	if err != nil {
		log.ErrorErr(log.CatEditor, "open failed", err, "path", path)
		return err
	}

	m.tabs = append(m.tabs, &tab{path: path, buf: buffer.FromText(string(data))})
	log.Info(log.CatEditor, "opened file", "path", path, "bytes", len(data))
	return nil
}

// activateTab switches the editor to the tab at idx.
func (m *Model) activateTab(idx int) {
	if idx < 0 || idx >= len(m.tabs) {
		return
	}
	m.active = idx
	m.editor.SetBuffer(m.tabs[idx].buf)
	m.syncStatus()
}

// requestCloseTab closes the tab at idx, asking first when it holds
// unsaved changes.
func (m *Model) requestCloseTab(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.tabs) {
		return m, nil
	}
	if m.tabs[idx].buf.Modified() {
		m.overlay = overlayConfirm
		m.pendingAction = confirmCloseTab
		m.pendingTab = idx
		m.modalOverlay = modal.New(modal.Config{
			Title:          "Close " + m.tabs[idx].name(),
			Message:        "This tab has unsaved changes. Close it anyway?",
			ConfirmVariant: modal.ButtonDanger,
		})
		m.modalOverlay.SetSize(m.width, m.height)
		return m, nil
	}
	m.closeTab(idx)
	return m, nil
}

func (m *Model) closeTab(idx int) {
	if idx < 0 || idx >= len(m.tabs) {
		return
	}
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if len(m.tabs) == 0 {
		m.newTab()
	}
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	m.activateTab(m.active)
}

// reloadTab re-reads the tab's file from disk, discarding buffer
// contents. Callers check Modified first.
func (m *Model) reloadTab(idx int) error {
	t := m.tabs[idx]
	if t.path == "" {
		return nil
	}
	data, err := os.ReadFile(t.path) //nolint:gosec // G304: previously opened path
	if err != nil {
		return err
	}
	t.buf.SetText(string(data))
	t.buf.SetModified(false)
	if idx == m.active {
		m.editor.SetBuffer(t.buf)
		m.syncStatus()
	}
	return nil
}

// saveActiveTab writes the active buffer to its file. Untitled tabs
// prompt for a name instead.
func (m *Model) saveActiveTab() tea.Cmd {
	t := m.activeTab()
	if t.path == "" {
		_, cmd := m.promptSaveAs()
		return cmd
	}

	if err := os.WriteFile(t.path, []byte(t.buf.Text()), 0o644); err != nil { //nolint:gosec // G306: source file
		log.ErrorErr(log.CatEditor, "save failed", err, "path", t.path)
		return m.showToast("could not save "+t.name(), toaster.LevelError)
	}
	t.buf.SetModified(false)
	m.syncStatus()
	log.Info(log.CatEditor, "saved file", "path", t.path)
	return m.showToast("saved "+t.name(), toaster.LevelSuccess)
}

// promptNewFile opens a modal asking for a new file name. The file is
// created in the workspace root.
func (m *Model) promptNewFile() (tea.Model, tea.Cmd) {
	m.overlay = overlayNewFile
	m.pendingAction = confirmNone
	m.modalOverlay = modal.New(modal.Config{
		Title:  "New File",
		Inputs: []modal.InputConfig{{Key: "name", Label: "File name", Placeholder: "script.py"}},
	})
	m.modalOverlay.SetSize(m.width, m.height)
	return m, m.modalOverlay.Init()
}

// promptSaveAs reuses the new-file modal to name an untitled buffer.
func (m *Model) promptSaveAs() (tea.Model, tea.Cmd) {
	return m.promptNewFile()
}

// createFile gives the active untitled tab a path and writes it, or
// opens a fresh tab when the active tab already has a file. New files
// must land inside the workspace root.
func (m *Model) createFile(name string) tea.Cmd {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.workDir, name)
	}
	path = filepath.Clean(path)

	if rel, err := filepath.Rel(m.workDir, path); err != nil ||
		rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return m.showToast("new files must stay inside "+m.workDir, toaster.LevelError)
	}

	if _, err := os.Stat(path); err == nil {
		return m.showToast(filepath.Base(path)+" already exists", toaster.LevelError)
	}

	t := m.activeTab()
	if t.path != "" {
		m.newTab()
		m.activateTab(len(m.tabs) - 1)
		t = m.activeTab()
	}
	t.path = path
	if t.buf.Text() == "" {
		t.buf.SetText("# " + filepath.Base(path) + "\n")
	}

	if err := os.WriteFile(path, []byte(t.buf.Text()), 0o644); err != nil { //nolint:gosec // G306: source file
		log.ErrorErr(log.CatEditor, "create failed", err, "path", path)
		t.path = ""
		return m.showToast("could not create "+name, toaster.LevelError)
	}
	t.buf.SetModified(false)
	if m.tree != nil {
		m.tree.Refresh()
	}
	m.syncStatus()
	return m.showToast("created "+filepath.Base(path), toaster.LevelSuccess)
}

// transformActiveTab XORs the buffer through the configured key. The
// transform is an involution, so a second invocation restores the
// original text.
func (m *Model) transformActiveTab() {
	key := byte(m.cfg.Cipher.Key)
	buf := m.activeBuffer()
	buf.SetText(cipher.Transform(buf.Text(), key))
	m.editor.SetBuffer(buf)
	m.syncStatus()
}
