package path

import (
	"math"
	"testing"

	"github.com/mastercactapus/mewpath/coord"
	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, expected, actual coord.Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
	assert.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func TestArc_points(t *testing.T) {
	// clockwise quarter circle from (10,0) to (0,10) around (10,10)
	a := arc{
		start:     coord.Point{X: 10},
		end:       coord.Point{X: 0, Y: 10},
		center:    coord.Point{X: 10, Y: 10},
		clockwise: true,
	}

	pts := a.points(4)
	assert.Len(t, pts, 4)

	assertPoint(t, coord.Point{X: 6.173165676349102, Y: 0.761204674887133}, pts[0])
	assertPoint(t, coord.Point{X: 2.928932188134525, Y: 2.928932188134525}, pts[1])
	assertPoint(t, coord.Point{X: 0.761204674887133, Y: 6.173165676349102}, pts[2])
	assertPoint(t, coord.Point{X: 0, Y: 10}, pts[3])

	// the first sample must not repeat the start point
	assert.False(t, pts[0].Equal(a.start))
}

func TestArc_points_counterClockwise(t *testing.T) {
	a := arc{
		start:  coord.Point{X: 10},
		end:    coord.Point{X: 0, Y: 10},
		center: coord.Point{},
	}

	pts := a.points(2)
	assert.Len(t, pts, 2)
	assertPoint(t, coord.Point{X: 10 * math.Cos(math.Pi/4), Y: 10 * math.Sin(math.Pi/4)}, pts[0])
	assertPoint(t, coord.Point{X: 0, Y: 10}, pts[1])
}

func TestArc_points_fullCircle(t *testing.T) {
	// start == end sweeps the whole circle, not a null move
	a := arc{
		start:     coord.Point{X: 10},
		end:       coord.Point{X: 10},
		center:    coord.Point{},
		clockwise: true,
	}

	pts := a.points(4)
	assert.Len(t, pts, 4)
	assertPoint(t, coord.Point{X: 0, Y: -10}, pts[0])
	assertPoint(t, coord.Point{X: -10, Y: 0}, pts[1])
	assertPoint(t, coord.Point{X: 0, Y: 10}, pts[2])
	assertPoint(t, coord.Point{X: 10, Y: 0}, pts[3])
}

func TestArc_points_zLerp(t *testing.T) {
	a := arc{
		start:     coord.Point{X: 10},
		end:       coord.Point{X: 0, Y: 10, Z: 8},
		center:    coord.Point{X: 10, Y: 10},
		clockwise: true,
	}

	pts := a.points(4)
	assert.Equal(t, []float64{2, 4, 6, 8}, []float64{pts[0].Z, pts[1].Z, pts[2].Z, pts[3].Z})
}

func TestArcCenterR(t *testing.T) {
	start := coord.Point{X: 10}
	end := coord.Point{X: 0, Y: 10}

	c, err := arcCenterR(start, end, 10, true)
	assert.NoError(t, err)
	assertPoint(t, coord.Point{X: 10, Y: 10}, c)

	c, err = arcCenterR(start, end, 10, false)
	assert.NoError(t, err)
	assertPoint(t, coord.Point{}, c)

	_, err = arcCenterR(start, end, 5, true)
	assert.EqualError(t, err, "arc radius R is smaller than half the chord")

	_, err = arcCenterR(start, start, 5, true)
	assert.EqualError(t, err, "arc with an R word requires a nonzero chord")
}
