package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/paths"
	"slate/internal/session"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent run history",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "number of runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	hist, err := session.OpenHistory(paths.HistoryDB())
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer func() { _ = hist.Close() }()

	records, err := hist.Recent(runsLimit)
	if err != nil {
		return fmt.Errorf("reading run history: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("no runs recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tFILE\tEXIT\tDURATION\tOUTPUT")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dB\n",
			rec.StartedAt.Format("2006-01-02 15:04:05"),
			rec.FilePath,
			rec.ExitCode,
			rec.Duration.Round(time.Millisecond),
			rec.OutputBytes,
		)
	}
	return w.Flush()
}
