package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarpov/votebench/internal/majority"
)

var findCmd = &cobra.Command{
	Use:   "find [numbers...]",
	Short: "Find the majority element of a sequence",
	Long: `Run the majority vote algorithm once over the given integers and
print the result together with the operation counts.

Numbers come from the arguments or, with --file, from a text file of
whitespace- or comma-separated integers.`,
	Example: `  votebench find 3 3 4 2 4 4 2 4 4
  votebench find --positions 1 1 1 2 2
  votebench find --file numbers.txt --optimized`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, _ := cmd.Flags().GetString("file")
		withPositions, _ := cmd.Flags().GetBool("positions")
		optimized, _ := cmd.Flags().GetBool("optimized")

		input := strings.Join(args, " ")
		if filePath != "" {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			input = string(data)
		}

		seq, err := parseSequence(input)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()

		var summary string
		var metrics majority.Metrics
		switch {
		case withPositions:
			res, m, err := majority.FindWithPositions(seq)
			if err != nil {
				return err
			}
			metrics = m
			summary = res.String()
			if res.Found {
				summary += fmt.Sprintf("\nPositions: %v", res.Positions)
			}
		case optimized:
			res, m, err := majority.FindOptimized(seq)
			if err != nil {
				return err
			}
			metrics = m
			summary = res.String()
		default:
			res, m, err := majority.Find(seq)
			if err != nil {
				return err
			}
			metrics = m
			summary = res.String()
		}

		fmt.Println(bold(summary))
		fmt.Printf("Metrics: %s\n", metrics)
		return nil
	},
}

// parseSequence splits whitespace- or comma-separated integers.
func parseSequence(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no numbers given")
	}

	seq := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		seq = append(seq, n)
	}
	return seq, nil
}

func init() {
	findCmd.Flags().String("file", "", "Read the sequence from a file instead of arguments")
	findCmd.Flags().Bool("positions", false, "Also collect every index of the majority element")
	findCmd.Flags().Bool("optimized", false, "Use the early-terminating variant")
	rootCmd.AddCommand(findCmd)
}
