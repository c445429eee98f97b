package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shiftsync/internal/adapters/driven/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	Long: `Lists recent sync runs from the local run history, including the
skipped-overlap count that the run payload omits.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	records, err := store.RunStore().ListRecent(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	for _, r := range records {
		status := "ok"
		if !r.Succeeded() {
			status = "failed: " + r.Error
		}
		cmd.Printf("%s  messages=%d shifts=%d created=%d updated=%d skipped=%d  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.MessagesSeen, r.ShiftsParsed,
			r.Created, r.Updated, r.SkippedOverlap,
			status,
		)
	}
	return nil
}
