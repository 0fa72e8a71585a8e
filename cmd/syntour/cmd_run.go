// --- syntour/cmd/syntour/cmd_run.go ---

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/v4rm4n/syntour/internal/tour"
	"go.uber.org/zap"
)

var onlySteps []string

// runCmd prints the tour transcript
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the tour transcript",
	Long: `Runs every demonstration in order and prints its output.

Example:
  syntour run
  syntour run --step closure --step map`,
	Args: cobra.NoArgs,
	RunE: runTour,
}

// listCmd lists the tour steps
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tour steps in order",
	Args:  cobra.NoArgs,
	RunE:  listSteps,
}

func runTour(cmd *cobra.Command, args []string) error {
	format, err := tour.ParseFormat(cfg.Tour.Format)
	if err != nil {
		return err
	}
	steps, err := tour.Select(onlySteps)
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Debug("tour started", zap.Int("steps", len(steps)), zap.Stringer("format", format))

	env := &tour.Env{Out: cmd.OutOrStdout(), Format: format, Logger: log}
	if err := tour.RunSteps(env, steps); err != nil {
		return fmt.Errorf("tour failed: %w", err)
	}

	log.Debug("tour finished")
	return nil
}

func listSteps(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, s := range tour.Steps() {
		fmt.Fprintf(tw, "%2d\t%s\t%s\n", i+1, s.Name, s.Category)
	}
	return tw.Flush()
}
