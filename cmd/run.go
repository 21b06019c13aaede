package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/paths"
	"slate/internal/runner"
	"slate/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a file through the configured interpreter without the TUI",
	Long:  `Executes FILE with the configured interpreter, streaming merged stdout and stderr to the terminal. The exit code of the interpreter becomes the exit code of slate.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHeadless,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied file argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	run, err := runner.Start(context.Background(), runner.Config{
		Interpreter: cfg.Interpreter,
		WorkDir:     filepath.Dir(path),
		Timeout:     cfg.Run.Timeout(),
	}, string(data))
	if err != nil {
		return err
	}

	var outputBytes int64
	exitCode := 0
	for ev := range run.Events() {
		switch ev.Type {
		case runner.EventOutput:
			outputBytes += int64(len(ev.Chunk))
			_, _ = os.Stdout.Write(ev.Chunk)
		case runner.EventExit:
			exitCode = ev.ExitCode
			fmt.Fprintln(os.Stderr, ev.Message)
		}
	}

	recordHeadlessRun(path, exitCode, outputBytes, run.StartedAt())

	if exitCode != 0 {
		return fmt.Errorf("exit status %d", exitCode)
	}
	return nil
}

// recordHeadlessRun adds the run to the shared history database so the
// TUI and `slate runs` see it too. Failures are ignored.
func recordHeadlessRun(path string, exitCode int, outputBytes int64, startedAt time.Time) {
	if err := paths.EnsureStateDir(); err != nil {
		return
	}
	hist, err := session.OpenHistory(paths.HistoryDB())
	if err != nil {
		return
	}
	defer func() { _ = hist.Close() }()

	_ = hist.Record(&session.RunRecord{
		FilePath:    path,
		ExitCode:    exitCode,
		Duration:    time.Since(startedAt),
		OutputBytes: outputBytes,
		StartedAt:   startedAt,
	})
}
