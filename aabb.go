package shapes

// AABB represents an axis-aligned bounding box.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
//
// Adapted from gogpu/gg's curve.go Rect, narrowed to float32.
type AABB struct {
	Min, Max Point
}

// NewAABB creates a bounding box from two corner points, normalized so that
// Min <= Max componentwise.
func NewAABB(p1, p2 Point) AABB {
	return AABB{Min: p1.Min(p2), Max: p1.Max(p2)}
}

// Width returns the width of the box.
func (b AABB) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the box.
func (b AABB) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Union returns the smallest box containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Contains reports whether p lies within the box, inclusive of its edges.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the midpoint of the box.
func (b AABB) Center() Point {
	return b.Min.Midpoint(b.Max)
}
