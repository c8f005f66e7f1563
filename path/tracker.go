package path

import (
	"errors"

	"github.com/mastercactapus/mewpath/coord"
	"github.com/mastercactapus/mewpath/gcode"
)

const (
	// DefaultResolution is the number of points sampled per arc.
	DefaultResolution = 20

	// DefaultFeed applies until an F word or CTS tag sets a speed.
	DefaultFeed = 100
)

type Config struct {
	Reader gcode.Reader

	Axes AxisLetters

	// Resolution is the number of points sampled per arc.
	Resolution int

	// Origin is the position assumed before the first motion command.
	Origin coord.Point
}

// A Tracker interprets motion commands into the machine's path: one
// point per linear move, Resolution points per arc, in file order.
type Tracker struct {
	gr   gcode.Reader
	axes AxisLetters
	res  int

	pos      coord.Point
	relative bool
	feed     float64

	buf  []coord.Point
	bufN int
}

func New(cfg Config) *Tracker {
	t := &Tracker{
		gr:   cfg.Reader,
		axes: cfg.Axes,
		res:  cfg.Resolution,
		pos:  cfg.Origin,
		feed: DefaultFeed,
	}
	t.axes.normalize()
	if t.res < 1 {
		t.res = DefaultResolution
	}
	return t
}

func (t *Tracker) Position() coord.Point {
	return t.pos
}

func (t *Tracker) Feed() float64 {
	return t.feed
}

func (t *Tracker) Read() (coord.Point, error) {
	for {
		if len(t.buf)-t.bufN > 0 {
			t.bufN++
			return t.buf[t.bufN-1], nil
		}

		b, err := t.gr.Read()
		if err != nil {
			return coord.Point{}, err
		}
		t.buf, err = t.run(b)
		if err != nil {
			return coord.Point{}, err
		}
		t.bufN = 0
	}
}

// run consumes one block; unknown and code-less blocks are valid no-ops.
func (t *Tracker) run(b gcode.Block) ([]coord.Point, error) {
	for _, g := range b {
		if g.W == 'F' {
			t.feed = g.Arg
		}
	}

	switch b.Code() {
	case "G0", "G1":
		if !b.HasAny(t.axes.X, 'X', t.axes.Y, 'Y', t.axes.Z, 'Z') {
			// feed-only or extrusion-only move
			return nil, nil
		}
		t.pos = t.target(b)
		return []coord.Point{t.pos}, nil
	case "G2":
		return t.runArc(b, true)
	case "G3":
		return t.runArc(b, false)
	case "G90":
		t.relative = false
	case "G91":
		t.relative = true
	}
	return nil, nil
}

func axisWord(b gcode.Block, w, literal byte) (bool, float64) {
	ok, v := b.Arg(w)
	if ok || w == literal {
		return ok, v
	}
	return b.Arg(literal)
}

// target reads the commanded position from b: configured letter with
// literal fallback, absent axes keep their value (or add 0, relative).
func (t *Tracker) target(b gcode.Block) coord.Point {
	p := t.pos
	set := func(cur *float64, w, literal byte) {
		ok, v := axisWord(b, w, literal)
		if !ok {
			return
		}
		if t.relative {
			*cur += v
		} else {
			*cur = v
		}
	}
	set(&p.X, t.axes.X, 'X')
	set(&p.Y, t.axes.Y, 'Y')
	set(&p.Z, t.axes.Z, 'Z')
	return p
}

func (t *Tracker) runArc(b gcode.Block, clockwise bool) ([]coord.Point, error) {
	end := t.target(b)
	center, err := t.arcCenter(b, end, clockwise)
	if err != nil {
		return nil, err
	}

	a := arc{start: t.pos, end: end, center: center, clockwise: clockwise}
	// state continues from the commanded target, not the last sample
	t.pos = end
	return a.points(t.res), nil
}

// arcCenter resolves I/J offsets (start-relative regardless of
// distance mode) or falls back to the R word.
func (t *Tracker) arcCenter(b gcode.Block, end coord.Point, clockwise bool) (coord.Point, error) {
	okI, i := b.Arg('I')
	okJ, j := b.Arg('J')
	if okI || okJ {
		return t.pos.Add(coord.Point{X: i, Y: j}), nil
	}

	ok, r := b.Arg('R')
	if !ok {
		return coord.Point{}, errors.New("arc requires an I, J, or R word: " + b.String())
	}
	return arcCenterR(t.pos, end, r, clockwise)
}
