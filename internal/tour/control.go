// --- syntour/internal/tour/control.go ---

package tour

import (
	"fmt"

	"github.com/v4rm4n/syntour/internal/tour/utils"
)

// Greater reports which of x and y wins, matching the branch step's output.
func Greater(x, y int) string {
	if x > y {
		return "x is greater"
	}
	return "y is greater or equal"
}

func stepBranch(env *Env) error {
	x, y := 42, 10
	env.println(Greater(x, y))
	return nil
}

func stepLoop(env *Env) error {
	n := 0
	for {
		n++
		break
	}
	if n != 1 {
		return fmt.Errorf("loop: body ran %d times", n)
	}
	return nil
}

// Countdown decrements from start to zero and returns the final value.
func Countdown(start int) int {
	y := start
	for y > 0 {
		y--
	}
	return y
}

func stepWhile(env *Env) error {
	if y := Countdown(10); y != 0 {
		return fmt.Errorf("while: stopped at %d", y)
	}
	return nil
}

func stepFor(env *Env) error {
	for i := range 3 {
		env.println(i)
	}
	return nil
}

func stepQualifiedCall(env *Env) error {
	env.println(utils.Helper())
	return nil
}

func stepClosure(env *Env) error {
	add := func(a, b int) int { return a + b }
	env.println(add(2, 3))
	return nil
}
