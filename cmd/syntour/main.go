// --- syntour/cmd/syntour/main.go ---

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/v4rm4n/syntour/internal/config"
	"github.com/v4rm4n/syntour/internal/logging"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "syntour",
	Short: "syntour - a syntax-coverage tour of Go",
	Long: `syntour walks through a fixed list of small syntax demonstrations
(bindings, control flow, enums, interfaces, closures, generics, unsafe,
collections) and prints a deterministic transcript.

Run without arguments to print the tour.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTour,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+" if present)")

	rootCmd.Flags().StringSliceVar(&onlySteps, "step", nil, "run only these steps (repeatable)")
	runCmd.Flags().StringSliceVar(&onlySteps, "step", nil, "run only these steps (repeatable)")

	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "emit the report as JSON")
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "emit the report as YAML")
	inspectCmd.Flags().IntVar(&inspectWorkers, "workers", 0, "parallel parsers (0 = config or GOMAXPROCS)")
	inspectCmd.Flags().BoolVar(&inspectTests, "tests", false, "also inspect _test.go files")
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "fail when any feature is missing")
	inspectCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddCommand(runCmd, listCmd, inspectCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
			_ = logger.Sync()
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
