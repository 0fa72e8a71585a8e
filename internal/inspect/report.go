// --- syntour/internal/inspect/report.go ---

package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteText renders the report for a terminal.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, f := range r.Files {
		fmt.Fprintf(tw, "%s (package %s)\n", f.Path, f.Package)
		for _, feat := range AllFeatures {
			if n := f.Counts[feat]; n > 0 {
				fmt.Fprintf(tw, "\t%s\t%d\n", feat, n)
			}
		}
		for _, c := range f.Closures {
			if c.CaptureFree() {
				fmt.Fprintf(tw, "\tclosure in %s\t%s\tcaptures nothing\n", c.Func, c.Pos)
				continue
			}
			fmt.Fprintf(tw, "\tclosure in %s\t%s\tcaptures %s\n", c.Func, c.Pos, strings.Join(c.Captures, ", "))
		}
	}

	covered := len(AllFeatures) - len(r.Missing)
	fmt.Fprintf(tw, "\ncoverage: %d/%d features\n", covered, len(AllFeatures))
	if len(r.Missing) > 0 {
		names := make([]string, len(r.Missing))
		for i, m := range r.Missing {
			names[i] = string(m)
		}
		fmt.Fprintf(tw, "missing: %s\n", strings.Join(names, ", "))
	}
	return tw.Flush()
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML renders the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
