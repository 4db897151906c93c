package shapes

import "github.com/chewxy/math32"

// DistanceEpsilon bounds the numerical tolerance used when comparing
// coordinates or lengths throughout this package.
const DistanceEpsilon float32 = 1e-4

// AngleEpsilon bounds the numerical tolerance used when comparing angles or
// circular progress values throughout this package.
const AngleEpsilon float32 = 1e-6

// IsConvex reports whether the path prev -> current -> next turns left
// (counter-clockwise), matching this package's winding convention for
// polygon vertices.
//
// Grounded in original_source's geometry.rs GeometryExt::is_convex.
func IsConvex(prev, current, next Point) bool {
	a := current.Sub(prev)
	b := next.Sub(current)
	return a.Cross(b) > 0
}

// RadialToCartesian converts a polar coordinate to a Cartesian displacement
// from the origin.
//
// Grounded in original_source's util.rs radial_to_cartesian.
func RadialToCartesian(radius, angleRadians float32) Vector {
	sin, cos := math32.Sincos(angleRadians)
	return Vector{X: cos * radius, Y: sin * radius}
}

// ProgressInRange reports whether progress lies within [from, to], handling
// the case where the range wraps around the circular [0, 1) parameter
// space (from > to).
//
// Grounded in original_source's util.rs progress_in_range.
func ProgressInRange(progress, from, to float32) bool {
	if to >= from {
		return progress >= from && progress <= to
	}
	return progress >= from || progress <= to
}

// CircularDistance returns the shortest distance between two progress
// values on the circular [0, 1) parameter space.
//
// Grounded in original_source's util.rs progress_distance.
func CircularDistance(p1, p2 float32) float32 {
	value := math32.Abs(p1 - p2)
	return minFloat32(value, 1.0-value)
}

// PositiveModulo returns a mod m, wrapped into [0, m) even for negative a.
func PositiveModulo(a, m float32) float32 {
	result := math32.Mod(a, m)
	if result < 0 {
		result += m
	}
	return result
}
