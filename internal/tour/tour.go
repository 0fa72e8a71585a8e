// --- syntour/internal/tour/tour.go ---

// Package tour runs the syntax-coverage tour: an ordered list of small,
// independent demonstrations that together print a fixed transcript.
package tour

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// ── Output format ────────────────────────────────────────────────────────────

// Format selects how collections are rendered in the transcript.
type Format int

const (
	FormatDebug Format = iota // [2, 4, 6] and {"key": 123}
	FormatGo                  // [2 4 6] and map[key:123]
)

// ParseFormat maps a config value onto a Format. Empty means debug.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "debug":
		return FormatDebug, nil
	case "go":
		return FormatGo, nil
	}
	return FormatDebug, fmt.Errorf("unknown tour format %q (want debug or go)", s)
}

func (f Format) String() string {
	if f == FormatGo {
		return "go"
	}
	return "debug"
}

// ── Environment ──────────────────────────────────────────────────────────────

// Env is what every step writes through. The first write error is kept and
// reported after the step returns, so steps can print without checking.
type Env struct {
	Out    io.Writer
	Format Format
	Logger *zap.Logger

	err error
}

func (e *Env) println(a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.Out, a...)
}

func (e *Env) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.Out, format, a...)
}

// ── Steps ────────────────────────────────────────────────────────────────────

// Step is one named demonstration.
type Step struct {
	Name     string
	Category string
	Run      func(env *Env) error
}

// Steps returns the tour in transcript order. The order is part of the
// output contract; do not sort.
func Steps() []Step {
	return []Step{
		{"bindings", "bindings", stepBindings},
		{"composites", "composites", stepComposites},
		{"record", "records", stepRecord},
		{"enum", "enums", stepEnum},
		{"branch", "control-flow", stepBranch},
		{"loop", "control-flow", stepLoop},
		{"while", "control-flow", stepWhile},
		{"for", "control-flow", stepFor},
		{"qualified-call", "namespaces", stepQualifiedCall},
		{"reference", "pointers", stepReference},
		{"destructure", "bindings", stepDestructure},
		{"closure", "closures", stepClosure},
		{"interface", "interfaces", stepInterface},
		{"result", "errors", stepResult},
		{"option", "errors", stepOption},
		{"macro", "macros", stepMacro},
		{"unsafe", "unsafe", stepUnsafe},
		{"literals", "literals", stepLiterals},
		{"alias", "types", stepAlias},
		{"generic", "generics", stepGeneric},
		{"iterator", "collections", stepIterator},
		{"map", "collections", stepMap},
	}
}

// Names lists step names in order.
func Names() []string {
	steps := Steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// Select returns the named steps in tour order. No names means all steps.
func Select(names []string) ([]Step, error) {
	all := Steps()
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Step
	for _, s := range all {
		if want[s.Name] {
			out = append(out, s)
			delete(want, s.Name)
		}
	}
	if len(want) > 0 {
		unknown := make([]string, 0, len(want))
		for n := range want {
			unknown = append(unknown, n)
		}
		slices.Sort(unknown)
		return nil, fmt.Errorf("unknown step(s): %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

// Run executes the whole tour against w with default settings.
func Run(w io.Writer) error {
	return RunSteps(&Env{Out: w}, Steps())
}

// RunSteps executes steps in order and stops at the first failure.
func RunSteps(env *Env, steps []Step) error {
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}
	for _, s := range steps {
		if err := s.Run(env); err != nil {
			return fmt.Errorf("step %s: %w", s.Name, err)
		}
		if env.err != nil {
			return fmt.Errorf("step %s: write: %w", s.Name, env.err)
		}
		env.Logger.Debug("step done", zap.String("step", s.Name), zap.String("category", s.Category))
	}
	return nil
}

// sayHello stands in for a textual macro: a call expands to one fixed line.
func sayHello(env *Env) {
	env.println("Hello from macro!")
}

func stepMacro(env *Env) error {
	sayHello(env)
	return nil
}
