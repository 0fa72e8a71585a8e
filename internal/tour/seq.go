// --- syntour/internal/tour/seq.go ---

package tour

import (
	"fmt"
	"iter"
	"slices"
)

// Map lazily applies f to each element of seq. Nothing runs until the
// result is ranged over or collected.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Doubled returns a new slice with every element of in multiplied by two.
func Doubled(in []int) []int {
	return slices.Collect(Map(slices.Values(in), func(x int) int { return x * 2 }))
}

// DebugString renders the value x points at. Every Go type is printable by
// fmt, so the constraint is any.
func DebugString[T any](x *T) string {
	return fmt.Sprintf("%v", *x)
}

func stepGeneric(env *Env) error {
	var num Int = 7
	if got := DebugString(&num); got != "7" {
		return fmt.Errorf("generic: got %q", got)
	}
	return nil
}

func stepIterator(env *Env) error {
	array := [3]int{1, 2, 3}
	doubled := Doubled(array[:])
	env.println(formatList(env.Format, doubled))
	return nil
}

func stepMap(env *Env) error {
	m := make(map[string]int)
	m["key"] = 123
	env.println(formatMap(env.Format, m))
	return nil
}
