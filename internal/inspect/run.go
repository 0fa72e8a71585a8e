// --- syntour/internal/inspect/run.go ---

package inspect

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options control which files are inspected and how.
type Options struct {
	Workers      int  // parallel parsers; <= 0 means GOMAXPROCS
	IncludeTests bool // also inspect _test.go files
	Logger       *zap.Logger
}

// Report aggregates the file reports of one inspection.
type Report struct {
	Files   []FileReport    `json:"files" yaml:"files"`
	Totals  map[Feature]int `json:"totals" yaml:"totals"`
	Missing []Feature       `json:"missing" yaml:"missing"`
}

// Covered reports whether at least one file exercises f.
func (r *Report) Covered(f Feature) bool {
	return r.Totals[f] > 0
}

// Closures returns every function literal across all files.
func (r *Report) Closures() []Closure {
	var out []Closure
	for _, f := range r.Files {
		out = append(out, f.Closures...)
	}
	return out
}

// Inspect parses every Go file named by paths and reports feature coverage.
// A path is a file, a directory (its own files only), or a directory
// followed by "/..." to include subdirectories.
func Inspect(ctx context.Context, paths []string, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := collectFiles(paths, opts.IncludeTests)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files found in %s", strings.Join(paths, ", "))
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fset := token.NewFileSet()
	reports := make([]FileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			reports[i] = InspectFile(fset, path, f)
			logger.Debug("inspected file", zap.String("path", path), zap.Int("features", len(reports[i].Counts)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Files: reports, Totals: make(map[Feature]int)}
	for _, fr := range reports {
		for feat, n := range fr.Counts {
			rep.Totals[feat] += n
		}
	}
	for _, feat := range AllFeatures {
		if rep.Totals[feat] == 0 {
			rep.Missing = append(rep.Missing, feat)
		}
	}
	logger.Info("inspection complete",
		zap.Int("files", len(files)),
		zap.Int("missing", len(rep.Missing)))
	return rep, nil
}

// collectFiles expands paths into a sorted, de-duplicated list of .go files.
func collectFiles(paths []string, includeTests bool) ([]string, error) {
	var files []string
	want := func(name string) bool {
		if !strings.HasSuffix(name, ".go") {
			return false
		}
		return includeTests || !strings.HasSuffix(name, "_test.go")
	}

	for _, p := range paths {
		recursive := false
		if rest, ok := strings.CutSuffix(p, "/..."); ok {
			p, recursive = rest, true
			if p == "" {
				p = "."
			}
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("could not read input path: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == p {
					return nil
				}
				if !recursive || skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if want(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// skipDir matches the directories the go tool ignores.
func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
