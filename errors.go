package shapes

import "errors"

// Sentinel errors returned by this package's constructors and methods.
//
// Following the teacher's accelerator.go pattern (ErrFallbackToCPU), these
// are plain errors.New values prefixed "shapes: ", not panics, since every
// condition below is reachable from caller-supplied data.
var (
	// ErrInvalidVertexCount is returned when a polygon is constructed with
	// fewer than three vertices.
	ErrInvalidVertexCount = errors.New("shapes: polygon requires at least three vertices")

	// ErrVertexArrayMisshape is returned when a flat coordinate array's
	// length is not a multiple of two, or otherwise cannot be paired into
	// (x, y) vertices.
	ErrVertexArrayMisshape = errors.New("shapes: vertex array length must be a multiple of 2")

	// ErrPerVertexRoundingLengthMismatch is returned when a per-vertex
	// CornerRounding slice's length does not match the vertex count.
	ErrPerVertexRoundingLengthMismatch = errors.New("shapes: per-vertex rounding length must match vertex count")

	// ErrProgressOutOfRange is returned when a progress value passed to
	// DoubleMapper.Map, DoubleMapper.MapBack or MeasuredPolygon.CutAndShift
	// falls outside [0, 1], or when a progress pair passed to
	// NewDoubleMapper falls outside [0, 1).
	ErrProgressOutOfRange = errors.New("shapes: progress value must lie in [0, 1)")

	// ErrProgressRepeat is returned when constructing a DoubleMapper from a
	// list of progress pairs in which two consecutive source values, or two
	// consecutive target values, lie within DistanceEpsilon of each other on
	// the circle.
	ErrProgressRepeat = errors.New("shapes: repeated progress value in mapping")

	// ErrMultipleWrap is returned when a DoubleMapper's progress pairs wrap
	// around the [0, 1) circle more than once.
	ErrMultipleWrap = errors.New("shapes: progress mapping wraps around more than once")

	// ErrUnmatchedMorph is returned when Morph cannot pair every cubic of
	// the start polygon with one from the end polygon.
	ErrUnmatchedMorph = errors.New("shapes: unable to match cubics between start and end polygons")

	// ErrZeroDirection is returned by Vector.Normalize when called on the
	// zero vector, which has no defined direction.
	ErrZeroDirection = errors.New("shapes: cannot normalize a zero-length vector")
)
