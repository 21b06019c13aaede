// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Editor surface colors
	EditorBackgroundColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}
	EditorForegroundColor = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#D4D4D4"}
	EditorGutterColor     = lipgloss.AdaptiveColor{Light: "#A0A0A0", Dark: "#696969"}
	EditorCursorLineColor = lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#2A2A2A"}

	// Syntax highlighting colors
	SyntaxKeywordColor = lipgloss.AdaptiveColor{Light: "#0000FF", Dark: "#569CD6"}
	SyntaxStringColor  = lipgloss.AdaptiveColor{Light: "#A31515", Dark: "#CE9178"}
	SyntaxCommentColor = lipgloss.AdaptiveColor{Light: "#008000", Dark: "#6A9955"}

	// Sidebar colors
	SidebarBackgroundColor = lipgloss.AdaptiveColor{Light: "#F3F3F3", Dark: "#252526"}
	SidebarForegroundColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	SidebarSelectedColor   = lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#54A0FF"}

	// Terminal pane colors
	TerminalBackgroundColor = lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#181818"}
	TerminalForegroundColor = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}

	// Text hierarchy
	TextMutedColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#107C10", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#B36200", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#C42B1C", Dark: "#FF8787"}

	// Tabs
	TabActiveColor   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#FFFFFF"}
	TabInactiveColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#107C10", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#C42B1C", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#B36200", Dark: "#FECA57"}

	// Syntax styles used by the editor highlighter
	KeywordStyle = lipgloss.NewStyle().Foreground(SyntaxKeywordColor).Bold(true)
	StringStyle  = lipgloss.NewStyle().Foreground(SyntaxStringColor)
	CommentStyle = lipgloss.NewStyle().Foreground(SyntaxCommentColor).Italic(true)

	// Editor chrome
	GutterStyle     = lipgloss.NewStyle().Foreground(EditorGutterColor)
	CursorLineStyle = lipgloss.NewStyle().Background(EditorCursorLineColor)

	// Sidebar
	SidebarStyle         = lipgloss.NewStyle().Foreground(SidebarForegroundColor)
	SidebarSelectedStyle = lipgloss.NewStyle().Foreground(SidebarSelectedColor).Bold(true)

	// Terminal pane
	TerminalStyle = lipgloss.NewStyle().Foreground(TerminalForegroundColor)

	// Tabs
	TabActiveStyle   = lipgloss.NewStyle().Foreground(TabActiveColor).Bold(true).Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().Foreground(TabInactiveColor).Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SidebarForegroundColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	// Inline run status lines
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	StatusFailureStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	// Overlay title
	OverlayTitleStyle = lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)

	// Muted hints and help footers
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)
