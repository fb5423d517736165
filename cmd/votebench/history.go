package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarpov/votebench/internal/bench"
	"github.com/akarpov/votebench/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past benchmark runs",
	Long: `List the most recent benchmark runs recorded in the history database,
or re-print one run's result rows with --rows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetString("rows")

		if dbPath == "" {
			dbPath = cfg.DBPath
		}
		store, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer store.Close()

		ctx := context.Background()

		if runID != "" {
			rows, err := store.GetRows(ctx, runID)
			if err != nil {
				return err
			}
			return bench.WriteCSV(os.Stdout, rows)
		}

		runs, err := store.ListRuns(ctx, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n", bold("ID                                    Created              Algorithm  Input                Seed"))
		for _, run := range runs {
			fmt.Printf("%-37s %-20s %-10s %-20s %d\n",
				run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Algorithm, run.InputType, run.Seed)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("db", "", "History database path (default from config)")
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	historyCmd.Flags().String("rows", "", "Print the result rows of the given run ID as CSV")
	rootCmd.AddCommand(historyCmd)
}
