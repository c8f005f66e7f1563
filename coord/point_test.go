package coord

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Point{X: 5, Y: 7, Z: 9}, a.Add(b))
}

func TestPoint_Sub(t *testing.T) {
	a := Point{X: 4, Y: 5, Z: 6}
	b := Point{X: 1, Y: 2, Z: 3}

	assert.Equal(t, Point{X: 3, Y: 3, Z: 3}, a.Sub(b))
}

func TestPoint_Lerp(t *testing.T) {
	a := Point{X: 10, Y: 10, Z: 10}
	b := Point{X: 20, Y: 20, Z: 20}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Point{X: 12.5, Y: 12.5, Z: 12.5}, a.Lerp(b, 0.25))
}

func TestPoint_Distance(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.Distance(Point{X: 4, Y: 6, Z: 3})
	assert.InEpsilon(t, 5, dist, .0001)
}

func TestPoint_DistanceXY(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.DistanceXY(4, 5)
	assert.InEpsilon(t, 4.24264, dist, .01)
}

func TestReadAll(t *testing.T) {
	pts := []Point{{X: 1}, {Y: 2}, {Z: 3}}
	r := &PointsReader{Points: pts}

	got, err := ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, pts, got)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}
