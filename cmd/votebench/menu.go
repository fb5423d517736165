package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarpov/votebench/internal/bench"
	"github.com/akarpov/votebench/internal/generator"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive benchmark menu",
	Long: `Pick an input type from a numbered menu and run the default benchmark
suite over it. Repeats until you quit with q, Ctrl+D, or Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runMenu(ctx)
	},
}

func runMenu(ctx context.Context) error {
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cyan("votebench> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	printMenu()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			fmt.Println("Goodbye!")
			return nil
		case "?", "help":
			printMenu()
			continue
		}

		typ, ok := menuChoice(line)
		if !ok {
			fmt.Printf("%s unknown choice %q (1-5, ? for menu, q to quit)\n", red("Error:"), line)
			continue
		}

		if err := runMenuSuite(ctx, typ); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

func printMenu() {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s\n", bold("Select input type:"))
	for i, typ := range generator.InputTypes() {
		fmt.Printf("  %d. %s\n", i+1, typ.Label())
	}
	fmt.Println("  q. Quit")
}

// menuChoice maps a 1-based menu number to its input type.
func menuChoice(line string) (generator.InputType, bool) {
	types := generator.InputTypes()
	for i, typ := range types {
		if line == fmt.Sprintf("%d", i+1) {
			return typ, true
		}
	}
	return "", false
}

func runMenuSuite(ctx context.Context, typ generator.InputType) error {
	bcfg := bench.DefaultConfig()
	bcfg.Sizes = cfg.Sizes
	bcfg.WarmupIterations = cfg.WarmupIterations
	bcfg.MeasureIterations = cfg.MeasureIterations
	bcfg.Seed = cfg.Seed
	bcfg.InputType = typ

	runner, err := bench.New(bcfg)
	if err != nil {
		return err
	}
	runner.OnRow = func(row bench.Row) {
		fmt.Printf("Size: %6d | Time: %8.4f ms | Comparisons: %10d | Result: %s\n",
			row.InputSize, row.AvgTimeMs, row.Comparisons, row.Result)
	}

	fmt.Printf("\nRunning suite: %s\n", typ.Label())
	if _, err := runner.Run(ctx); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
