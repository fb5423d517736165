package main

import (
	"github.com/spf13/cobra"

	"github.com/akarpov/votebench/internal/config"
)

const version = "0.1.0"

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "votebench",
	Short:   "Benchmark harness for the Boyer-Moore majority vote algorithm",
	Version: version,
	Long: `votebench measures the Boyer-Moore majority vote algorithm over
synthetic inputs: comparisons, assignments, element accesses, wall-clock
time, and a best-effort memory delta per invocation.

Results go to a CSV file and, optionally, a local sqlite history database
so past runs can be listed and re-exported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "Path to the YAML config file")
}
