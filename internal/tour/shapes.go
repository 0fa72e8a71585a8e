// --- syntour/internal/tour/shapes.go ---

package tour

import (
	"fmt"
	"io"
)

// Point is a record with two named fields.
type Point struct {
	X int
	Y int
}

// Drawable is implemented by anything that can render itself to w.
type Drawable interface {
	Draw(w io.Writer) error
}

// Draw writes the point's coordinates as "Drawing at (x, y)".
func (p Point) Draw(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Drawing at (%d, %d)\n", p.X, p.Y)
	return err
}

var _ Drawable = Point{}

func stepRecord(env *Env) error {
	p := Point{X: 1, Y: 2}
	if p.X != 1 || p.Y != 2 {
		return fmt.Errorf("record: got %+v", p)
	}
	return nil
}

func stepInterface(env *Env) error {
	var d Drawable = Point{X: 1, Y: 2}
	return d.Draw(env.Out)
}
