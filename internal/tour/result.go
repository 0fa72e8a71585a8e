// --- syntour/internal/tour/result.go ---

package tour

import (
	"errors"
	"strconv"
)

// ErrFail is the only failure MayFail produces.
var ErrFail = errors.New("fail")

// MayFail returns 1 when ok is true and ErrFail otherwise.
func MayFail(ok bool) (int, error) {
	if ok {
		return 1, nil
	}
	return 0, ErrFail
}

// Maybe is an optional int: ok reports whether a value is present.
func Maybe(present bool) (v int, ok bool) {
	if !present {
		return 0, false
	}
	return 5, true
}

// resultLine renders both arms of a MayFail result.
func resultLine(val int, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return "Success: " + strconv.Itoa(val)
}

func stepResult(env *Env) error {
	env.println(resultLine(MayFail(true)))
	return nil
}

func stepOption(env *Env) error {
	if v, ok := Maybe(true); ok {
		env.printf("Value: %d\n", v)
	}
	return nil
}
