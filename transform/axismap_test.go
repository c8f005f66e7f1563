package transform

import (
	"testing"

	"github.com/mastercactapus/mewpath/coord"
	"github.com/stretchr/testify/assert"
)

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("x")
	assert.NoError(t, err)
	assert.Equal(t, AxisX, a)

	a, err = ParseAxis("Y")
	assert.NoError(t, err)
	assert.Equal(t, AxisY, a)

	a, err = ParseAxis("z")
	assert.NoError(t, err)
	assert.Equal(t, AxisZ, a)
	assert.Equal(t, "z", a.String())

	_, err = ParseAxis("w")
	assert.EqualError(t, err, "invalid axis: w")
}

func TestAxisMap_Apply(t *testing.T) {
	p := coord.Point{X: 1, Y: 2, Z: 3}

	assert.Equal(t, p, AxisMap{X: AxisX, Y: AxisY, Z: AxisZ}.Apply(p))
	assert.Equal(t, coord.Point{X: 2, Y: 3, Z: 1}, AxisMap{X: AxisY, Y: AxisZ, Z: AxisX}.Apply(p))

	// duplicate sources are degenerate but well defined
	assert.Equal(t, coord.Point{X: 3, Y: 3, Z: 3}, AxisMap{X: AxisZ, Y: AxisZ, Z: AxisZ}.Apply(p))
}

func TestAxisMap_Inverse(t *testing.T) {
	p := coord.Point{X: 1, Y: 2, Z: 3}

	maps := []AxisMap{
		{X: AxisX, Y: AxisY, Z: AxisZ},
		{X: AxisY, Y: AxisZ, Z: AxisX},
		{X: AxisZ, Y: AxisX, Z: AxisY},
		{X: AxisY, Y: AxisX, Z: AxisZ},
		{X: AxisZ, Y: AxisY, Z: AxisX},
	}
	for _, m := range maps {
		inv, err := m.Inverse()
		assert.NoError(t, err)
		assert.Equal(t, p, inv.Apply(m.Apply(p)), "map %v", m)
	}

	_, err := AxisMap{X: AxisX, Y: AxisX, Z: AxisZ}.Inverse()
	assert.EqualError(t, err, "axis map is not a bijection")
}
