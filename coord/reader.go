package coord

import "io"

// A Reader yields points one at a time, in path order, returning
// io.EOF after the last one.
type Reader interface {
	Read() (Point, error)
}

// PointsReader is a Reader over a fixed slice.
type PointsReader struct {
	Points []Point
	n      int
}

func (p *PointsReader) Read() (Point, error) {
	if p.n == len(p.Points) {
		return Point{}, io.EOF
	}

	p.n++
	return p.Points[p.n-1], nil
}

// ReadAll drains r, preserving order.
func ReadAll(r Reader) ([]Point, error) {
	var pts []Point
	for {
		p, err := r.Read()
		if err == io.EOF {
			return pts, nil
		}
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
}
