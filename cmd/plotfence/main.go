// Command plotfence prices the fencing of a garden map read from a file or stdin.
//
// Usage:
//
//	plotfence [file] [--method stream|flood] [--workers N] [--cache N] [--regions]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/plotfence/garden"
	"github.com/katalvlaran/plotfence/gridgraph"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "plotfence:", err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command with flag defaults taken from cfg.
func newRootCmd(cfg Config) *cobra.Command {
	var showRegions bool
	cmd := &cobra.Command{
		Use:           "plotfence [file]",
		Short:         "Price the fencing of every region in a garden map",
		Long:          "Reads a rectangular map of plant symbols, one row per line, and prints the sum of area × perimeter over all regions.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			lvl, _ := parseLevel(cfg.LogLevel)
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return run(cmd.OutOrStdout(), logger, cfg, text, showRegions)
		},
	}
	cmd.Flags().StringVar(&cfg.Method, "method", cfg.Method, "Analysis method: stream|flood")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines chunking rows ahead of the merge (0 = inline)")
	cmd.Flags().IntVar(&cfg.Cache, "cache", cfg.Cache, "Distinct rows to memoise chunking for (0 = off)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	cmd.Flags().BoolVar(&showRegions, "regions", false, "Print every region before the total")

	return cmd
}

// readInput returns the named file's contents, or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// run prices text with the configured method and writes the result to out.
func run(out io.Writer, logger *slog.Logger, cfg Config, text string, showRegions bool) error {
	switch cfg.Method {
	case methodFlood:
		grid, err := garden.ParseGrid(text)
		if err != nil {
			return err
		}
		gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
		if err != nil {
			return err
		}
		if showRegions {
			for _, r := range gg.Regions() {
				fmt.Fprintf(out, "%c\tarea=%d\tperimeter=%d\tprice=%d\n", r.Symbol, r.Area, r.Perimeter, r.Area*r.Perimeter)
			}
		}
		total := gg.TotalPrice()
		logger.Info("garden priced", "method", methodFlood, "width", gg.Width, "height", gg.Height, "total", total)
		fmt.Fprintln(out, total)

	default:
		rep, err := garden.Analyze(text,
			garden.WithLogger(logger),
			garden.WithWorkers(cfg.Workers),
			garden.WithChunkCache(cfg.Cache),
		)
		if err != nil {
			return err
		}
		if showRegions {
			for _, r := range rep.Regions {
				fmt.Fprintf(out, "%c\tarea=%d\tperimeter=%d\tprice=%d\n", r.Symbol, r.Area, r.Perimeter, r.Cost())
			}
		}
		fmt.Fprintln(out, rep.Total)
	}

	return nil
}
