package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mastercactapus/mewpath/coord"
	"github.com/mastercactapus/mewpath/gcode"
	"github.com/mastercactapus/mewpath/path"
	"github.com/mastercactapus/mewpath/pointcsv"
	"github.com/mastercactapus/mewpath/transform"
)

// Config is the converter's flag surface; zero values select the
// defaults (x/y/z letters, long axis x, resolution 20, no cylinder).
type Config struct {
	// Diameter of the tube in mm; 0 leaves the path Cartesian.
	Diameter  float64
	Thickness float64

	// XAxis, YAxis and ZAxis name the GCode letter read for each
	// coordinate. YAxis may be "auto" to detect the wrap letter.
	XAxis string
	YAxis string
	ZAxis string

	LongAxis string

	Resolution int
}

// A Converter turns GCode programs into point paths; build once, reuse
// across files.
type Converter struct {
	axes  path.AxisLetters
	autoY bool
	res   int
	cyl   transform.Cylinder
}

func axisLetter(s string) (byte, error) {
	if len(s) != 1 {
		return 0, errors.New("invalid axis letter: " + s)
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, errors.New("invalid axis letter: " + s)
	}
	return c, nil
}

// New validates cfg up front, before any file is touched.
func New(cfg Config) (*Converter, error) {
	if cfg.XAxis == "" {
		cfg.XAxis = "x"
	}
	if cfg.YAxis == "" {
		cfg.YAxis = "y"
	}
	if cfg.ZAxis == "" {
		cfg.ZAxis = "z"
	}
	if cfg.LongAxis == "" {
		cfg.LongAxis = "x"
	}
	if cfg.Resolution == 0 {
		cfg.Resolution = path.DefaultResolution
	}
	if cfg.Resolution < 1 {
		return nil, errors.New("curve resolution must be at least 1")
	}

	c := &Converter{res: cfg.Resolution}

	var err error
	c.axes.X, err = axisLetter(cfg.XAxis)
	if err != nil {
		return nil, err
	}
	if cfg.YAxis == "auto" {
		c.autoY = true
	} else {
		c.axes.Y, err = axisLetter(cfg.YAxis)
		if err != nil {
			return nil, err
		}
	}
	c.axes.Z, err = axisLetter(cfg.ZAxis)
	if err != nil {
		return nil, err
	}

	c.cyl.Long, err = transform.ParseAxis(cfg.LongAxis)
	if err != nil {
		return nil, err
	}
	c.cyl.Diameter = cfg.Diameter
	c.cyl.Thickness = cfg.Thickness
	err = c.cyl.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs r through the pipeline and returns the path in print order.
func (c *Converter) Convert(r io.Reader) ([]coord.Point, error) {
	blocks, err := gcode.ReadAll(gcode.NewParser(r))
	if err != nil {
		return nil, err
	}
	return c.convert(blocks)
}

func (c *Converter) convert(blocks []gcode.Block) ([]coord.Point, error) {
	axes := c.axes
	if c.autoY {
		w, ok := path.DetectWrapLetter(blocks, axes.X, axes.Z)
		if !ok {
			return nil, errors.New("cannot detect a wrap axis letter")
		}
		axes.Y = w
	}

	tr := path.New(path.Config{
		Reader:     &gcode.BlocksReader{Blocks: blocks},
		Axes:       axes,
		Resolution: c.res,
	})
	pts, err := coord.ReadAll(tr)
	if err != nil {
		return nil, err
	}

	// arcs were sampled in machine space; the whole path is projected
	// once, at the end
	for i := range pts {
		pts[i] = c.cyl.Apply(pts[i])
	}
	return pts, nil
}

// File converts the named GCode file and writes the points next to it
// with the extension replaced by ".csv". A file carrying no commands at
// all writes nothing and returns an empty output name.
func (c *Converter) File(name string) (string, []coord.Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", nil, err
	}
	blocks, err := gcode.ReadAll(gcode.NewParser(f))
	f.Close()
	if err != nil {
		return "", nil, err
	}
	if len(blocks) == 0 {
		return "", nil, nil
	}

	pts, err := c.convert(blocks)
	if err != nil {
		return "", nil, err
	}

	out := strings.TrimSuffix(name, filepath.Ext(name)) + ".csv"
	err = pointcsv.WriteFile(out, pts)
	if err != nil {
		return "", nil, err
	}
	return out, pts, nil
}
