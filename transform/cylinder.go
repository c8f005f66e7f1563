package transform

import (
	"errors"
	"math"

	"github.com/mastercactapus/mewpath/coord"
)

// A Cylinder wraps a flat path onto a tube: the coordinate
// perpendicular to the long axis holds the rotational stage's angle in
// degrees and is replaced by the matching position on a cylinder of
// radius Diameter/2+Thickness. Zero Diameter disables the projection.
type Cylinder struct {
	Diameter  float64
	Thickness float64
	Long      Axis
}

func (c Cylinder) Validate() error {
	if c.Diameter < 0 {
		return errors.New("tube diameter must not be negative")
	}
	if c.Thickness < 0 {
		return errors.New("tube wall thickness must not be negative")
	}
	return nil
}

func (c Cylinder) Enabled() bool {
	return c.Diameter > 0
}

// alignMap swaps the long axis into the x slot. A transposition is its
// own inverse, so the same map swaps the result back.
func (c Cylinder) alignMap() AxisMap {
	switch c.Long {
	case AxisY:
		return AxisMap{X: AxisY, Y: AxisX, Z: AxisZ}
	case AxisZ:
		return AxisMap{X: AxisZ, Y: AxisY, Z: AxisX}
	}
	return AxisMap{X: AxisX, Y: AxisY, Z: AxisZ}
}

// Apply projects p onto the tube. In the aligned frame x runs along
// the tube and y is the wrap angle; the long coordinate passes through
// unchanged in its own slot.
func (c Cylinder) Apply(p coord.Point) coord.Point {
	if !c.Enabled() {
		return p
	}

	swap := c.alignMap()
	p = swap.Apply(p)

	theta := p.Y * math.Pi / 180
	r := c.Diameter/2 + c.Thickness
	p = coord.Point{X: p.X, Y: r * math.Cos(theta), Z: r * math.Sin(theta)}

	return swap.Apply(p)
}
