package shapes

import "github.com/chewxy/math32"

// Point represents a 2-D position.
//
// Adapted from gogpu/gg's point.go, split from its combined point/vector
// type into a position-only type (see Vector for displacements), and
// narrowed to float32 to match the single-precision domain this package
// documents in DistanceEpsilon and AngleEpsilon.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by a displacement vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: minFloat32(p.X, q.X), Y: minFloat32(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: maxFloat32(p.X, q.X), Y: maxFloat32(p.Y, q.Y)}
}

// ToVector treats the point's coordinates as a displacement from the origin.
func (p Point) ToVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// RotatedDegrees returns p rotated by angleDegrees around center.
func (p Point) RotatedDegrees(angleDegrees float32, center Point) Point {
	angle := angleDegrees / 360.0 * 2.0 * math32.Pi
	off := p.Sub(center)
	sin, cos := math32.Sincos(angle)
	rotated := Vector{X: off.X*cos - off.Y*sin, Y: off.X*sin + off.Y*cos}
	return rotated.AsPoint().Add(center.ToVector())
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
