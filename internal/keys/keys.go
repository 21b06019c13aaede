// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// GlobalKeyMap holds bindings that work regardless of focus.
type GlobalKeyMap struct {
	Save          key.Binding
	Run           key.Binding
	CancelRun     key.Binding
	CheckSyntax   key.Binding
	Preview       key.Binding
	GotoLine      key.Binding
	Encrypt       key.Binding
	NewFile       key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	CloseTab      key.Binding
	CyclePane     key.Binding
	ToggleSidebar key.Binding
	ToggleHidden  key.Binding
	ThemePicker   key.Binding
	ToggleLogs    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// SidebarKeyMap holds bindings active while the file tree is focused.
type SidebarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Collapse key.Binding
	Refresh  key.Binding
}

// Global is the application-wide keymap.
var Global = defaultGlobalKeyMap()

// Sidebar is the file tree keymap.
var Sidebar = defaultSidebarKeyMap()

func defaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save file"),
		),
		Run: key.NewBinding(
			key.WithKeys("f5", "ctrl+r"),
			key.WithHelp("F5", "run file"),
		),
		CancelRun: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel run"),
		),
		CheckSyntax: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("F7", "check syntax"),
		),
		Preview: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("F8", "preview markdown"),
		),
		GotoLine: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "go to line"),
		),
		Encrypt: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "encrypt/decrypt file"),
		),
		NewFile: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new file"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+pgdown"),
			key.WithHelp("alt+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+pgup"),
			key.WithHelp("alt+←", "previous tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		CyclePane: key.NewBinding(
			key.WithKeys("ctrl+tab", "f6"),
			key.WithHelp("F6", "cycle focus"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle sidebar"),
		),
		ToggleHidden: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "toggle hidden files"),
		),
		ThemePicker: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "pick theme"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("F12", "toggle log viewer"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

func defaultSidebarKeyMap() SidebarKeyMap {
	return SidebarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open file / toggle dir"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "collapse / go to parent"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh tree"),
		),
	}
}
