package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	active := cfg.Theme.Preset
	if active == "" {
		active = "default"
	}

	for _, name := range styles.PresetNames() {
		marker := " "
		if name == active {
			marker = "*"
		}
		desc := ""
		if preset, ok := styles.Presets[name]; ok {
			desc = preset.Description
		}
		fmt.Printf("%s %-14s %s\n", marker, name, desc)
	}
	return nil
}
