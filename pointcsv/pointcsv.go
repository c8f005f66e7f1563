package pointcsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/mastercactapus/mewpath/coord"
)

// six decimals keeps sub-micrometer fidelity
func field(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// Write writes the x,y,z header and one row per point, in path order.
func Write(w io.Writer, pts []coord.Point) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{"x", "y", "z"})
	if err != nil {
		return err
	}

	row := make([]string, 3)
	for _, p := range pts {
		row[0] = field(p.X)
		row[1] = field(p.Y)
		row[2] = field(p.Z)
		err = cw.Write(row)
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the path to name, creating or truncating it.
func WriteFile(name string, pts []coord.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, pts)
}
