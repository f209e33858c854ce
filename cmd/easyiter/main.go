package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.llib.dev/easyiter/internal/bench"
	"go.llib.dev/easyiter/internal/demo"
)

var cmd Cmd

// Cmd is the command line arguments.
type Cmd struct {
	// ConfigPath is the path to the benchmark configuration file.
	ConfigPath string
	// Verbose enables debug logging.
	Verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "easyiter",
	Short: "Examples and benchmarks for the easyiter iterator toolkit",
	// main reports the error.
	SilenceErrors: true,
	SilenceUsage:  true,
}

var demoCmd = &cobra.Command{
	Use:       "demo <name>",
	Short:     "Run one of the example programs",
	Args:      cobra.ExactArgs(1),
	ValidArgs: demo.Names(),
	RunE: func(rawCmd *cobra.Command, args []string) error {
		return demo.Run(args[0], rawCmd.OutOrStdout())
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare easyiter sequences with hand written loops",
	RunE: func(rawCmd *cobra.Command, _ []string) error {
		return runBench(rawCmd.Context(), cmd, rawCmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cmd.Verbose, "verbose", "v", false, "Enable debug logging")
	benchCmd.Flags().StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to the benchmark configuration file")

	rootCmd.AddCommand(demoCmd, benchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Development = false
	config.Level.SetLevel(zap.InfoLevel)
	if verbose {
		config.Level.SetLevel(zap.DebugLevel)
	}
	return config.Build()
}

func runBench(ctx context.Context, cmd Cmd, w io.Writer) error {
	logger, err := newLogger(cmd.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	log := logger.Sugar()

	cfg := bench.DefaultConfig()
	if cmd.ConfigPath != "" {
		if cfg, err = bench.LoadConfig(cmd.ConfigPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	log.Debugw("benchmark configuration", zap.Any("config", cfg))

	results, err := bench.Run(ctx, cfg, log)
	if err != nil {
		return err
	}
	return printResults(w, results)
}

func printResults(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tROUNDS\tTOTAL\tPER ROUND\tCHECKSUM")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\n", r.Case, r.Rounds, r.Elapsed, r.PerRound(), r.Checksum)
	}
	return tw.Flush()
}
