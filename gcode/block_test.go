package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_Code(t *testing.T) {
	assert.Equal(t, "G1", Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 10}}.Code())
	assert.Equal(t, "G1", MustParse("G01 X10")[0].Code())
	assert.Equal(t, "M2", Block{{W: 'M', Arg: 2}}.Code())
	assert.Equal(t, "", Block{{W: 'X', Arg: 10}}.Code())
	assert.Equal(t, "", Block(nil).Code())
}

func TestBlock_Arg(t *testing.T) {
	b := Block{{W: 'G', Arg: 2}, {W: 'X', Arg: 10}, {W: 'I', Arg: -5}}

	ok, v := b.Arg('X')
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	ok, v = b.Arg('I')
	assert.True(t, ok)
	assert.Equal(t, -5.0, v)

	ok, v = b.Arg('J')
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestBlock_HasAny(t *testing.T) {
	b := Block{{W: 'G', Arg: 1}, {W: 'U', Arg: 90}}

	assert.True(t, b.HasAny('X', 'U'))
	assert.False(t, b.HasAny('X', 'Y', 'Z'))
	assert.False(t, Block(nil).HasAny('X'))
}

func TestBlock_String(t *testing.T) {
	assert.Equal(t, "G1 X10.5 Y-2", Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 10.5}, {W: 'Y', Arg: -2}}.String())
}
