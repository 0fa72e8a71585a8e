// --- syntour/cmd/syntour/cmd_inspect.go ---

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/v4rm4n/syntour/internal/inspect"
	"go.uber.org/zap"
)

var (
	inspectJSON    bool
	inspectYAML    bool
	inspectWorkers int
	inspectTests   bool
	inspectStrict  bool
)

// inspectCmd reports syntax coverage of Go sources
var inspectCmd = &cobra.Command{
	Use:   "inspect <file.go | dir | dir/...>...",
	Short: "Report which tour features a set of Go files exercises",
	Long: `Parses the given Go files and counts every syntax category the tour
demonstrates. Function literals are listed with the outer variables they
capture.

A directory inspects only its own files; append /... to recurse.

Examples:
  syntour inspect ./internal/tour/...
  syntour inspect --json main.go
  syntour inspect --strict ./...`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts := inspect.Options{
		Workers:      cfg.Inspect.Workers,
		IncludeTests: cfg.Inspect.IncludeTests || inspectTests,
		Logger:       logger,
	}
	if inspectWorkers > 0 {
		opts.Workers = inspectWorkers
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("inspecting", zap.Strings("paths", args), zap.Int("workers", opts.Workers))
	rep, err := inspect.Inspect(ctx, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case inspectJSON:
		err = rep.WriteJSON(out)
	case inspectYAML:
		err = rep.WriteYAML(out)
	default:
		err = rep.WriteText(out)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if inspectStrict && len(rep.Missing) > 0 {
		missing := make([]string, len(rep.Missing))
		for i, m := range rep.Missing {
			missing[i] = string(m)
		}
		return fmt.Errorf("missing features: %s", strings.Join(missing, ", "))
	}
	return nil
}
