package transform

import (
	"errors"

	"github.com/mastercactapus/mewpath/coord"
)

// An AxisMap names, for each output axis, the input coordinate that
// feeds it. Duplicate sources are permitted and produce degenerate
// (but well-defined) output.
type AxisMap struct {
	X, Y, Z Axis
}

func component(p coord.Point, a Axis) float64 {
	switch a {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	return p.X
}

// Apply remaps p's coordinates.
func (m AxisMap) Apply(p coord.Point) coord.Point {
	return coord.Point{
		X: component(p, m.X),
		Y: component(p, m.Y),
		Z: component(p, m.Z),
	}
}

// Inverse returns the map that undoes m. Only a bijection over the
// three axes has an inverse.
func (m AxisMap) Inverse() (AxisMap, error) {
	var axes [3]Axis
	var seen [3]bool
	for i, src := range [3]Axis{m.X, m.Y, m.Z} {
		if src < AxisX || src > AxisZ || seen[src] {
			return AxisMap{}, errors.New("axis map is not a bijection")
		}
		seen[src] = true
		axes[src] = Axis(i)
	}
	return AxisMap{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}
