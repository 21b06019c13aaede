// Package styles contains Lip Gloss style definitions.
package styles

import "sort"

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"light":         LightPreset,
	"midnight":      MidnightPreset,
	"high-contrast": HighContrastPreset,
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPreset is the slate dark color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default slate dark theme",
	Colors: map[ColorToken]string{
		TokenEditorBackground: "#1E1E1E",
		TokenEditorForeground: "#D4D4D4",
		TokenEditorGutter:     "#696969",
		TokenEditorCursorLine: "#2A2A2A",

		TokenSyntaxKeyword: "#569CD6",
		TokenSyntaxString:  "#CE9178",
		TokenSyntaxComment: "#6A9955",

		TokenSidebarBackground: "#252526",
		TokenSidebarForeground: "#CCCCCC",
		TokenSidebarSelected:   "#54A0FF",

		TokenTerminalBackground: "#181818",
		TokenTerminalForeground: "#CCCCCC",

		TokenTextMuted: "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenTabActive:   "#FFFFFF",
		TokenTabInactive: "#777777",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
}

// LightPreset is a light background palette.
var LightPreset = Preset{
	Name:        "light",
	Description: "Light background palette",
	Colors: map[ColorToken]string{
		TokenEditorBackground: "#FFFFFF",
		TokenEditorForeground: "#1F1F1F",
		TokenEditorGutter:     "#A0A0A0",
		TokenEditorCursorLine: "#F0F0F0",

		TokenSyntaxKeyword: "#0000FF",
		TokenSyntaxString:  "#A31515",
		TokenSyntaxComment: "#008000",

		TokenSidebarBackground: "#F3F3F3",
		TokenSidebarForeground: "#333333",
		TokenSidebarSelected:   "#0066CC",

		TokenTerminalBackground: "#F8F8F8",
		TokenTerminalForeground: "#1F1F1F",

		TokenTextMuted: "#999999",

		TokenBorderDefault: "#C0C0C0",
		TokenBorderFocus:   "#333333",

		TokenStatusSuccess: "#107C10",
		TokenStatusWarning: "#B36200",
		TokenStatusError:   "#C42B1C",

		TokenTabActive:   "#1F1F1F",
		TokenTabInactive: "#999999",

		TokenOverlayTitle:  "#333333",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#107C10",
		TokenToastError:   "#C42B1C",
		TokenToastInfo:    "#0066CC",
		TokenToastWarn:    "#B36200",
	},
}

// MidnightPreset is a deep blue dark palette.
var MidnightPreset = Preset{
	Name:        "midnight",
	Description: "Deep blue dark palette",
	Colors: map[ColorToken]string{
		TokenEditorBackground: "#0F111A",
		TokenEditorForeground: "#A6ACCD",
		TokenEditorGutter:     "#464B5D",
		TokenEditorCursorLine: "#1A1C25",

		TokenSyntaxKeyword: "#C792EA",
		TokenSyntaxString:  "#C3E88D",
		TokenSyntaxComment: "#545C7E",

		TokenSidebarBackground: "#0B0D14",
		TokenSidebarForeground: "#A6ACCD",
		TokenSidebarSelected:   "#82AAFF",

		TokenTerminalBackground: "#090B10",
		TokenTerminalForeground: "#A6ACCD",

		TokenTextMuted: "#464B5D",

		TokenBorderDefault: "#464B5D",
		TokenBorderFocus:   "#82AAFF",

		TokenStatusSuccess: "#C3E88D",
		TokenStatusWarning: "#FFCB6B",
		TokenStatusError:   "#F07178",

		TokenTabActive:   "#FFFFFF",
		TokenTabInactive: "#545C7E",

		TokenOverlayTitle:  "#A6ACCD",
		TokenOverlayBorder: "#464B5D",

		TokenToastSuccess: "#C3E88D",
		TokenToastError:   "#F07178",
		TokenToastInfo:    "#82AAFF",
		TokenToastWarn:    "#FFCB6B",
	},
}

// HighContrastPreset maximizes contrast for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenEditorBackground: "#000000",
		TokenEditorForeground: "#FFFFFF",
		TokenEditorGutter:     "#FFFFFF",
		TokenEditorCursorLine: "#1A1A1A",

		TokenSyntaxKeyword: "#00FFFF",
		TokenSyntaxString:  "#FFFF00",
		TokenSyntaxComment: "#00FF00",

		TokenSidebarBackground: "#000000",
		TokenSidebarForeground: "#FFFFFF",
		TokenSidebarSelected:   "#FFFF00",

		TokenTerminalBackground: "#000000",
		TokenTerminalForeground: "#FFFFFF",

		TokenTextMuted: "#BBBBBB",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenTabActive:   "#FFFF00",
		TokenTabInactive: "#BBBBBB",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",
	},
}
