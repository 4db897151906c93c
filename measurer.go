package shapes

import "github.com/chewxy/math32"

// Measurer abstracts how "distance along a cubic" is defined, so a
// MeasuredPolygon can be parameterized by arc length, angle, or any other
// monotonic measure.
//
// Grounded in original_source's measurer.rs.
type Measurer interface {
	// MeasureCubic returns the size of c according to this measurer's
	// chosen unit. Must be >= 0.
	MeasureCubic(c Cubic) float32

	// FindCubicCutPoint returns the parameter t at which c reaches measure
	// m, where m is expected to be between 0 and MeasureCubic(c) (values
	// outside that range are clamped).
	FindCubicCutPoint(c Cubic, m float32) float32
}

// LengthMeasurer approximates arc length with a 3-segment chord
// approximation, trading precision for speed (exact Bézier arc length has
// no closed form).
type LengthMeasurer struct{}

const lengthMeasurerSegments = 3

// closestProgressTo walks the chord approximation of c, returning the
// parameter t at which the accumulated chord length reaches threshold (or
// 1 and the curve's total chord length, if threshold exceeds it).
func closestProgressTo(cubic Cubic, threshold float32) (t, length float32) {
	var total float32
	remainder := threshold
	prev := cubic.Anchor0

	for i := 1; i <= lengthMeasurerSegments; i++ {
		progress := float32(i) / float32(lengthMeasurerSegments)
		point := cubic.Eval(progress)
		segment := point.Sub(prev).Length()

		if segment >= remainder {
			return progress - (1.0-remainder/segment)/float32(lengthMeasurerSegments), threshold
		}

		remainder -= segment
		total += segment
		prev = point
	}

	return 1.0, total
}

// MeasureCubic returns c's approximate chord length.
func (LengthMeasurer) MeasureCubic(c Cubic) float32 {
	_, length := closestProgressTo(c, math32.Inf(1))
	return length
}

// FindCubicCutPoint returns the parameter t at which c's approximate chord
// length reaches m.
func (LengthMeasurer) FindCubicCutPoint(c Cubic, m float32) float32 {
	if m < 0 {
		m = 0
	}
	t, _ := closestProgressTo(c, m)
	return t
}
