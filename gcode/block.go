package gcode

import (
	"strings"
)

// A Block holds the words of one line. The first G or M word is the
// command code; the rest are argument words.
type Block []Word

// Code returns the normalized command code ("G1" for G01), or "" when
// the block carries no G or M word.
func (b Block) Code() string {
	for _, g := range b {
		if g.IsCode() {
			return g.String()
		}
	}
	return ""
}

// Arg returns the value of the first word with the given letter.
func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}

// HasAny reports whether a word with any of the given letters is present.
func (b Block) HasAny(ws ...byte) bool {
	for _, g := range b {
		for _, w := range ws {
			if g.W == w {
				return true
			}
		}
	}
	return false
}

func (b Block) String() string {
	parts := make([]string, len(b))
	for i, g := range b {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
