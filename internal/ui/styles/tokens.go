// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Editor surface
	TokenEditorBackground ColorToken = "editor.background"
	TokenEditorForeground ColorToken = "editor.foreground"
	TokenEditorGutter     ColorToken = "editor.gutter"
	TokenEditorCursorLine ColorToken = "editor.cursor_line"

	// Syntax highlighting
	TokenSyntaxKeyword ColorToken = "syntax.keyword"
	TokenSyntaxString  ColorToken = "syntax.string"
	TokenSyntaxComment ColorToken = "syntax.comment"

	// Explorer sidebar
	TokenSidebarBackground ColorToken = "sidebar.background"
	TokenSidebarForeground ColorToken = "sidebar.foreground"
	TokenSidebarSelected   ColorToken = "sidebar.selected"

	// Output terminal pane
	TokenTerminalBackground ColorToken = "terminal.background"
	TokenTerminalForeground ColorToken = "terminal.foreground"

	// Text hierarchy
	TokenTextMuted ColorToken = "text.muted"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Tabs
	TokenTabActive   ColorToken = "tab.active"
	TokenTabInactive ColorToken = "tab.inactive"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenEditorBackground,
		TokenEditorForeground,
		TokenEditorGutter,
		TokenEditorCursorLine,

		TokenSyntaxKeyword,
		TokenSyntaxString,
		TokenSyntaxComment,

		TokenSidebarBackground,
		TokenSidebarForeground,
		TokenSidebarSelected,

		TokenTerminalBackground,
		TokenTerminalForeground,

		TokenTextMuted,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenTabActive,
		TokenTabInactive,

		TokenOverlayTitle,
		TokenOverlayBorder,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,
	}
}
