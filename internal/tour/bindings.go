// --- syntour/internal/tour/bindings.go ---

package tour

import (
	"fmt"
	"unicode/utf8"
)

// Process-wide named constants.
const (
	Pi   = 3.14
	Name = "Gopher"
)

// Int is an alias, not a new type: Int and int32 are interchangeable.
type Int = int32

// Pair is a fixed two-position tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Unpack destructures the pair into two values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func stepBindings(env *Env) error {
	var x int32 = 42
	y := 0
	y = 10 // mutable binding

	// Block-scoped constant shadows nothing outside this function.
	const limit = 3

	if x != 42 || y != 10 || limit != 3 {
		return fmt.Errorf("bindings: got x=%d y=%d limit=%d", x, y, limit)
	}
	if Pi != 3.14 || Name == "" {
		return fmt.Errorf("bindings: package constants changed")
	}
	return nil
}

func stepComposites(env *Env) error {
	tuple := Pair[int32, bool]{First: 1, Second: true}
	array := [3]int32{1, 2, 3}
	slice := array[:]

	if !tuple.Second || tuple.First != 1 {
		return fmt.Errorf("composites: tuple %+v", tuple)
	}
	if len(array) != 3 || len(slice) != len(array) {
		return fmt.Errorf("composites: array len %d, slice len %d", len(array), len(slice))
	}
	// The slice is a view: writes through it show up in the array.
	slice[0] = 9
	if array[0] != 9 {
		return fmt.Errorf("composites: slice does not alias array")
	}
	return nil
}

func stepReference(env *Env) error {
	x := int32(42)
	r := &x
	z := *r
	if z != x {
		return fmt.Errorf("reference: *r = %d, want %d", z, x)
	}
	return nil
}

func stepDestructure(env *Env) error {
	tuple := Pair[int32, bool]{First: 1, Second: true}
	a, b := tuple.Unpack()
	if a != 1 || !b {
		return fmt.Errorf("destructure: got (%d, %t)", a, b)
	}
	return nil
}

func stepLiterals(env *Env) error {
	raw := `Raw string with "quotes"`
	byteStr := []byte("bytes")
	ch := '🦀'

	if raw != "Raw string with \"quotes\"" {
		return fmt.Errorf("literals: raw string %q", raw)
	}
	if len(byteStr) != 5 {
		return fmt.Errorf("literals: byte string len %d", len(byteStr))
	}
	if utf8.RuneLen(ch) != 4 {
		return fmt.Errorf("literals: rune %q is %d bytes", ch, utf8.RuneLen(ch))
	}
	return nil
}

func stepAlias(env *Env) error {
	var num Int = 7
	var plain int32 = num
	if plain != 7 {
		return fmt.Errorf("alias: got %d", plain)
	}
	return nil
}
