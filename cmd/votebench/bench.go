package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarpov/votebench/internal/bench"
	"github.com/akarpov/votebench/internal/generator"
	"github.com/akarpov/votebench/internal/storage"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the majority-vote benchmark suite",
	Long: `Run warmup and measured iterations of the selected algorithm over
synthetic inputs of each configured size, then write the aggregated rows to
a CSV file and record the run in the history database.

Input types: clear (60% majority), slim (n/2+1 majority), none (no
majority), unanimous, random.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sizes, _ := cmd.Flags().GetIntSlice("size")
		inputName, _ := cmd.Flags().GetString("input")
		algoName, _ := cmd.Flags().GetString("algo")
		seed, _ := cmd.Flags().GetInt64("seed")
		warmup, _ := cmd.Flags().GetInt("warmup")
		iterations, _ := cmd.Flags().GetInt("iterations")
		csvPath, _ := cmd.Flags().GetString("csv")
		dbPath, _ := cmd.Flags().GetString("db")
		parallel, _ := cmd.Flags().GetBool("parallel")
		quiet, _ := cmd.Flags().GetBool("quiet")

		inputType, err := generator.ParseInputType(inputName)
		if err != nil {
			return err
		}

		bcfg := &bench.Config{
			Sizes:             cfg.Sizes,
			WarmupIterations:  cfg.WarmupIterations,
			MeasureIterations: cfg.MeasureIterations,
			Seed:              cfg.Seed,
			Algorithm:         bench.Algorithm(algoName),
			InputType:         inputType,
			Parallel:          parallel,
		}
		if len(sizes) > 0 {
			bcfg.Sizes = sizes
		}
		if cmd.Flags().Changed("seed") {
			bcfg.Seed = seed
		}
		if cmd.Flags().Changed("warmup") {
			bcfg.WarmupIterations = warmup
		}
		if cmd.Flags().Changed("iterations") {
			bcfg.MeasureIterations = iterations
		}
		if csvPath == "" {
			csvPath = cfg.CSVPath
		}
		if !cmd.Flags().Changed("db") {
			dbPath = cfg.DBPath
		}

		runner, err := bench.New(bcfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		if !quiet {
			fmt.Printf("%s\n", cyan("=== Boyer-Moore Majority Vote Benchmark ==="))
			fmt.Printf("Algorithm: %s | Input: %s | Seed: %d\n", bcfg.Algorithm, bcfg.InputType.Label(), bcfg.Seed)
			fmt.Printf("Warmup: %d | Iterations: %d | Sizes: %v\n\n", bcfg.WarmupIterations, bcfg.MeasureIterations, bcfg.Sizes)
			runner.OnRow = func(row bench.Row) {
				fmt.Printf("Size: %6d | Time: %8.4f ms | Comparisons: %10d | Result: %s\n",
					row.InputSize, row.AvgTimeMs, row.Comparisons, row.Result)
			}
		}

		rows, err := runner.Run(ctx)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating results file: %w", err)
		}
		if err := bench.WriteCSV(f, rows); err != nil {
			f.Close()
			return fmt.Errorf("writing results: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing results file: %w", err)
		}
		if !quiet {
			fmt.Printf("\n%s Results saved to %s\n", green("✓"), csvPath)
		}

		if dbPath != "" {
			store, err := storage.Open(dbPath)
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer store.Close()

			run := storage.NewRun(string(bcfg.Algorithm), bcfg.InputType.Label(), bcfg.Seed)
			if err := store.SaveRun(ctx, run, rows); err != nil {
				return fmt.Errorf("saving run history: %w", err)
			}
			if !quiet {
				fmt.Printf("%s Run %s recorded in %s\n", green("✓"), run.ID, dbPath)
			}
		}

		return nil
	},
}

func init() {
	benchCmd.Flags().IntSlice("size", nil, "Input sizes to benchmark (overrides config)")
	benchCmd.Flags().String("input", "clear", "Input type: clear, slim, none, unanimous, random")
	benchCmd.Flags().String("algo", "standard", "Algorithm: standard, optimized, positions")
	benchCmd.Flags().Int64("seed", generator.DefaultSeed, "Seed for input generation")
	benchCmd.Flags().Int("warmup", 5, "Warmup iterations per size")
	benchCmd.Flags().Int("iterations", 10, "Measured iterations per size")
	benchCmd.Flags().String("csv", "", "Results CSV path (default from config)")
	benchCmd.Flags().String("db", "", "History database path (empty disables history)")
	benchCmd.Flags().Bool("parallel", false, "Benchmark sizes concurrently (independent sequences per goroutine)")
	benchCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(benchCmd)
}
