// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import syntax, but syntax can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	// Editor surface
	if c, ok := colors[TokenEditorBackground]; ok {
		EditorBackgroundColor = makeColor(c)
	}
	if c, ok := colors[TokenEditorForeground]; ok {
		EditorForegroundColor = makeColor(c)
	}
	if c, ok := colors[TokenEditorGutter]; ok {
		EditorGutterColor = makeColor(c)
	}
	if c, ok := colors[TokenEditorCursorLine]; ok {
		EditorCursorLineColor = makeColor(c)
	}

	// Syntax
	if c, ok := colors[TokenSyntaxKeyword]; ok {
		SyntaxKeywordColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxString]; ok {
		SyntaxStringColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxComment]; ok {
		SyntaxCommentColor = makeColor(c)
	}

	// Sidebar
	if c, ok := colors[TokenSidebarBackground]; ok {
		SidebarBackgroundColor = makeColor(c)
	}
	if c, ok := colors[TokenSidebarForeground]; ok {
		SidebarForegroundColor = makeColor(c)
	}
	if c, ok := colors[TokenSidebarSelected]; ok {
		SidebarSelectedColor = makeColor(c)
	}

	// Terminal
	if c, ok := colors[TokenTerminalBackground]; ok {
		TerminalBackgroundColor = makeColor(c)
	}
	if c, ok := colors[TokenTerminalForeground]; ok {
		TerminalForegroundColor = makeColor(c)
	}

	// Text
	if c, ok := colors[TokenTextMuted]; ok {
		TextMutedColor = makeColor(c)
	}

	// Borders
	if c, ok := colors[TokenBorderDefault]; ok {
		BorderDefaultColor = makeColor(c)
	}
	if c, ok := colors[TokenBorderFocus]; ok {
		BorderFocusColor = makeColor(c)
	}

	// Status
	if c, ok := colors[TokenStatusSuccess]; ok {
		StatusSuccessColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusWarning]; ok {
		StatusWarningColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusError]; ok {
		StatusErrorColor = makeColor(c)
	}

	// Tabs
	if c, ok := colors[TokenTabActive]; ok {
		TabActiveColor = makeColor(c)
	}
	if c, ok := colors[TokenTabInactive]; ok {
		TabInactiveColor = makeColor(c)
	}

	// Overlays
	if c, ok := colors[TokenOverlayTitle]; ok {
		OverlayTitleColor = makeColor(c)
	}
	if c, ok := colors[TokenOverlayBorder]; ok {
		OverlayBorderColor = makeColor(c)
	}

	// Toast
	if c, ok := colors[TokenToastSuccess]; ok {
		ToastBorderSuccessColor = makeColor(c)
	}
	if c, ok := colors[TokenToastError]; ok {
		ToastBorderErrorColor = makeColor(c)
	}
	if c, ok := colors[TokenToastInfo]; ok {
		ToastBorderInfoColor = makeColor(c)
	}
	if c, ok := colors[TokenToastWarn]; ok {
		ToastBorderWarnColor = makeColor(c)
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// This is necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	KeywordStyle = lipgloss.NewStyle().Foreground(SyntaxKeywordColor).Bold(true)
	StringStyle = lipgloss.NewStyle().Foreground(SyntaxStringColor)
	CommentStyle = lipgloss.NewStyle().Foreground(SyntaxCommentColor).Italic(true)

	GutterStyle = lipgloss.NewStyle().Foreground(EditorGutterColor)
	CursorLineStyle = lipgloss.NewStyle().Background(EditorCursorLineColor)

	SidebarStyle = lipgloss.NewStyle().Foreground(SidebarForegroundColor)
	SidebarSelectedStyle = lipgloss.NewStyle().Foreground(SidebarSelectedColor).Bold(true)

	TerminalStyle = lipgloss.NewStyle().Foreground(TerminalForegroundColor)

	TabActiveStyle = lipgloss.NewStyle().Foreground(TabActiveColor).Bold(true).Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().Foreground(TabInactiveColor).Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(SidebarForegroundColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	StatusFailureStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	OverlayTitleStyle = lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
