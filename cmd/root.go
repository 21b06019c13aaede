package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slate/internal/app"
	"slate/internal/config"
	"slate/internal/log"
	"slate/internal/paths"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "slate [files...]",
	Short:   "A terminal code editor with run support",
	Long:    `A terminal editor for small scripts: syntax highlighting, a file explorer, and one-key execution through a configurable interpreter.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/slate/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to the state directory")
	rootCmd.Flags().StringP("dir", "d", "",
		"workspace directory for the file explorer")
	rootCmd.Flags().String("interpreter", "",
		"interpreter executable (overrides config)")

	_ = viper.BindPFlag("interpreter", rootCmd.Flags().Lookup("interpreter"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("interpreter", defaults.Interpreter)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_hidden_files", defaults.UI.ShowHiddenFiles)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("run.timeout_seconds", defaults.Run.TimeoutSeconds)
	viper.SetDefault("cipher.key", defaults.Cipher.Key)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .slate/config.yaml (current directory)
		// 2. ~/.config/slate/config.yaml (user config)
		if _, err := os.Stat(".slate/config.yaml"); err == nil {
			viper.SetConfigFile(".slate/config.yaml")
		} else {
			viper.AddConfigPath(paths.ConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: write a commented default config so users have
			// something to edit.
			defaultPath := filepath.Join(paths.ConfigDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
		}
		// Malformed config files degrade to defaults rather than
		// failing startup.
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		cfg = config.Defaults()
	}
	if err := config.Validate(cfg); err != nil {
		cfg = config.Defaults()
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	workDir, _ := cmd.Flags().GetString("dir")
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}

	var openFiles []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			continue
		}
		openFiles = append(openFiles, abs)
	}

	zone.NewGlobal()

	model := app.New(app.Options{
		Config:     cfg,
		ConfigPath: viper.ConfigFileUsed(),
		WorkDir:    workDir,
		OpenFiles:  openFiles,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// setupLogging enables file logging when --debug or SLATE_DEBUG is set.
func setupLogging(cmd *cobra.Command) (func(), error) {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug && os.Getenv("SLATE_DEBUG") == "" {
		return nil, nil
	}

	if err := paths.EnsureStateDir(); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	logPath := filepath.Join(paths.StateDir(), "slate.log")
	cleanup, err := log.InitWithTeaLog(logPath, "slate")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetEnabled(true)
	return cleanup, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
