package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/runner"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a file for syntax errors without executing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied file argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, err := runner.CheckSyntax(ctx, runner.Config{
		Interpreter: cfg.Interpreter,
		WorkDir:     filepath.Dir(path),
	}, string(data))
	if err != nil {
		return fmt.Errorf("syntax check failed: %w", err)
	}

	if issue != nil {
		if issue.Line > 0 {
			return fmt.Errorf("%s:%d: %s", args[0], issue.Line, issue.Message)
		}
		return fmt.Errorf("%s: %s", args[0], issue.Message)
	}

	fmt.Printf("%s: no syntax errors\n", args[0])
	return nil
}
