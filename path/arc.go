package path

import (
	"errors"
	"math"

	"github.com/mastercactapus/mewpath/coord"
)

// A sweep this close to zero means the commanded arc is a full
// circle, not a null move.
const fullCircleSweep = 1e-3

type arc struct {
	start, end, center coord.Point

	clockwise bool
}

// points samples n positions at equal angle steps, excluding the start
// and including the end so segment boundaries never repeat a point.
// The out-of-plane coordinate lerps from start to end.
func (a arc) points(n int) []coord.Point {
	radius := a.center.DistanceXY(a.start.X, a.start.Y)
	startAngle := math.Atan2(a.start.Y-a.center.Y, a.start.X-a.center.X)
	endAngle := math.Atan2(a.end.Y-a.center.Y, a.end.X-a.center.X)

	// sweep in the commanded direction, never the shorter arc
	sweep := endAngle - startAngle
	if a.clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if !a.clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	}
	if math.Abs(sweep) < fullCircleSweep {
		sweep = 2 * math.Pi
		if a.clockwise {
			sweep = -sweep
		}
	}

	pts := make([]coord.Point, n)
	for i := range pts {
		t := float64(i+1) / float64(n)
		angle := startAngle + sweep*t

		p := a.start.Lerp(a.end, t)
		p.X = a.center.X + radius*math.Cos(angle)
		p.Y = a.center.Y + radius*math.Sin(angle)
		pts[i] = p
	}
	return pts
}

// arcCenterR solves the center of an R-form arc, taking Marlin's
// small-sweep solution on the commanded direction's side of the chord.
func arcCenterR(start, end coord.Point, r float64, clockwise bool) (coord.Point, error) {
	d := end.Sub(start)
	chord := math.Hypot(d.X, d.Y)
	if chord == 0 {
		return coord.Point{}, errors.New("arc with an R word requires a nonzero chord")
	}
	h := r*r - chord*chord/4
	if h < 0 {
		return coord.Point{}, errors.New("arc radius R is smaller than half the chord")
	}

	ux := d.X / chord
	uy := d.Y / chord
	if clockwise {
		ux, uy = uy, -ux
	} else {
		ux, uy = -uy, ux
	}

	s := math.Sqrt(h)
	return coord.Point{
		X: (start.X+end.X)/2 + ux*s,
		Y: (start.Y+end.Y)/2 + uy*s,
		Z: start.Z,
	}, nil
}
