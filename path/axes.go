package path

import (
	"github.com/mastercactapus/mewpath/gcode"
)

// AxisLetters selects which GCode word letter feeds each tracked axis;
// MEW printers drive the rotational stage under printer-specific
// letters like U, A or B. A configured letter still falls back to the
// axis' own literal letter when absent from a block.
type AxisLetters struct {
	X, Y, Z byte
}

func (a *AxisLetters) normalize() {
	def := func(w *byte, literal byte) {
		if *w == 0 {
			*w = literal
		}
		if *w >= 'a' && *w <= 'z' {
			*w -= 'a' - 'A'
		}
	}
	def(&a.X, 'X')
	def(&a.Y, 'Y')
	def(&a.Z, 'Z')
}

// DetectWrapLetter returns the first argument letter in blocks that is
// not a parameter word or one of the excluded coordinate letters.
func DetectWrapLetter(blocks []gcode.Block, exclude ...byte) (byte, bool) {
	skip := map[byte]bool{
		'F': true, 'I': true, 'J': true, 'K': true,
		'R': true, 'P': true, 'S': true, 'E': true,
	}
	for _, w := range exclude {
		skip[w] = true
	}

	for _, b := range blocks {
		for _, g := range b {
			if g.IsCode() || skip[g.W] {
				continue
			}
			return g.W, true
		}
	}
	return 0, false
}
