package coord

import (
	"math"
)

// Point is a position in machine space. Field order matches the
// x,y,z column order of the output file.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	p.Z += target.Z
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

// Lerp returns the point a fraction t of the way from p to target.
// t=0 is p, t=1 is target.
func (p Point) Lerp(target Point, t float64) Point {
	p.X += (target.X - p.X) * t
	p.Y += (target.Y - p.Y) * t
	p.Z += (target.Z - p.Z) * t
	return p
}

// Distance will return the distance to the target point.
func (p Point) Distance(target Point) float64 {
	return math.Sqrt(math.Pow(target.X-p.X, 2) + math.Pow(target.Y-p.Y, 2) + math.Pow(target.Z-p.Z, 2))
}

// DistanceXY will return the 2D distance to p from (x,y).
func (p Point) DistanceXY(x, y float64) float64 {
	return math.Sqrt(math.Pow(x-p.X, 2) + math.Pow(y-p.Y, 2))
}
