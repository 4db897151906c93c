package shapes

import "github.com/chewxy/math32"

// Vector represents a 2-D displacement or direction, as distinct from Point,
// which represents a position.
//
// Adapted from gogpu/gg's vec.go (Vec2), narrowed to float32.
type Vector struct {
	X, Y float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by a factor.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float32) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Negate returns the opposite vector.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2-D cross product (the z-component of the 3-D cross
// product with z=0), whose sign indicates the turn direction from v to w.
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude of the vector, cheaper than
// Length when only comparing magnitudes.
func (v Vector) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction as v.
// It returns ErrZeroDirection if v has zero length.
func (v Vector) Normalize() (Vector, error) {
	length := v.Length()
	if length == 0 {
		return Vector{}, ErrZeroDirection
	}
	return Vector{X: v.X / length, Y: v.Y / length}, nil
}

// Rotate90 returns v rotated a quarter turn counter-clockwise.
func (v Vector) Rotate90() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by angle radians.
func (v Vector) Rotate(angle float32) Vector {
	sin, cos := math32.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp performs linear interpolation between two vectors.
func (v Vector) Lerp(w Vector, t float32) Vector {
	return Vector{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Angle returns the signed angle in radians from v to w.
func (v Vector) Angle(w Vector) float32 {
	return math32.Atan2(v.Cross(w), v.Dot(w))
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// AsPoint treats v as a position, i.e. a displacement from the origin.
func (v Vector) AsPoint() Point {
	return Point{X: v.X, Y: v.Y}
}
