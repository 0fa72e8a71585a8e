// --- syntour/internal/tour/color.go ---

package tour

import "fmt"

// Color is a closed enumeration.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// String names the color. Unknown values are an error in Describe, not here.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Describe dispatches over every variant. Go switches are not checked for
// exhaustiveness, so the default arm rejects values outside the set.
func Describe(c Color) (string, error) {
	switch c {
	case Red:
		return "Red", nil
	case Green:
		return "Green", nil
	case Blue:
		return "Blue", nil
	default:
		return "", fmt.Errorf("unknown color %d", int(c))
	}
}

func stepEnum(env *Env) error {
	c := Red
	name, err := Describe(c)
	if err != nil {
		return err
	}
	env.println(name)
	return nil
}
