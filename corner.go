package shapes

import "github.com/chewxy/math32"

// CornerRounding describes how much a polygon vertex should be rounded off,
// and how much of that rounding should blend smoothly into the adjoining
// edges rather than following a pure circular arc.
//
// Grounded in original_source's rounded_polygon.rs CornerRounding.
type CornerRounding struct {
	// Radius is the radius of the circular arc that replaces the vertex.
	Radius float32
	// Smoothing controls how much the flanking curves blend toward the
	// adjoining edges instead of meeting the arc abruptly, in [0, 1].
	Smoothing float32
}

// UNROUNDED leaves a vertex as a sharp corner.
var UNROUNDED = CornerRounding{Radius: 0, Smoothing: 0}

// NewCornerRounding returns a CornerRounding with the given radius and no
// smoothing.
func NewCornerRounding(radius float32) CornerRounding {
	return CornerRounding{Radius: radius}
}

// SmoothedCornerRounding returns a CornerRounding with the given radius and
// smoothing factor.
func SmoothedCornerRounding(radius, smoothing float32) CornerRounding {
	return CornerRounding{Radius: radius, Smoothing: smoothing}
}

// roundedCorner computes the cubics that replace a single polygon vertex
// p1 (with neighbors p0 and p2) with a rounded or smoothed corner. It holds
// mutable scratch state (center) filled in by getCubics, following the
// RoundedCorner struct in the original Rust reference.
//
// Grounded in original_source's rounded_polygon.rs RoundedCorner.
type roundedCorner struct {
	p0, p1, p2 Point
	d1, d2     Vector

	cornerRadius     float32
	smoothing        float32
	expectedRoundCut float32

	center Point
}

func newRoundedCorner(p0, p1, p2 Point, rounding CornerRounding) *roundedCorner {
	rc := &roundedCorner{p0: p0, p1: p1, p2: p2}

	v01 := p0.Sub(p1)
	v21 := p2.Sub(p1)
	d01 := v01.Length()
	d21 := v21.Length()

	if d01 > 0 && d21 > 0 {
		rc.d1 = v01.Div(d01)
		rc.d2 = v21.Div(d21)

		rc.cornerRadius = rounding.Radius
		rc.smoothing = rounding.Smoothing

		cosAngle := rc.d1.Dot(rc.d2)
		sinAngle := math32.Sqrt(1.0 - cosAngle*cosAngle)

		if sinAngle > 1e-3 {
			rc.expectedRoundCut = rc.cornerRadius * (cosAngle + 1.0) / sinAngle
		}
	}

	return rc
}

// expectedCut returns how much of a side must be cut to satisfy both the
// rounding radius and the requested smoothing.
func (rc *roundedCorner) expectedCut() float32 {
	return (1.0 + rc.smoothing) * rc.expectedRoundCut
}

func (rc *roundedCorner) calculateActualSmoothingValue(allowedCut float32) float32 {
	switch {
	case allowedCut > rc.expectedCut():
		return rc.smoothing
	case allowedCut > rc.expectedRoundCut:
		return rc.smoothing * (allowedCut - rc.expectedRoundCut) / (rc.expectedCut() - rc.expectedRoundCut)
	default:
		return 0.0
	}
}

// lineIntersection returns the intersection of the line through p0 in
// direction d0 and the line through p1 in direction d1, or false if the
// lines are (numerically) parallel.
func lineIntersection(p0 Point, d0 Vector, p1 Point, d1 Vector) (Point, bool) {
	rotatedD1 := d1.Rotate90()
	den := d0.Dot(rotatedD1)

	if math32.Abs(den) < DistanceEpsilon {
		return Point{}, false
	}

	num := p1.Sub(p0).Dot(rotatedD1)

	if math32.Abs(den) < DistanceEpsilon*math32.Abs(num) {
		return Point{}, false
	}

	k := num / den
	return p0.Add(d0.Scale(k)), true
}

// computeFlankingCurve builds one of the two cubics that connect a
// polygon's side to the rounding arc at a corner.
func computeFlankingCurve(
	actualRoundCut, actualSmoothing float32,
	corner, sideStart, circleSegmentIntersection, otherCircleSegmentIntersection, circleCenter Point,
	actualR float32,
) (Cubic, error) {
	sideDirection, err := sideStart.Sub(corner).Normalize()
	if err != nil {
		return Cubic{}, err
	}
	curveStart := corner.Add(sideDirection.Scale(actualRoundCut * (1.0 + actualSmoothing)))

	p := circleSegmentIntersection.Lerp(
		circleSegmentIntersection.Midpoint(otherCircleSegmentIntersection),
		actualSmoothing,
	)
	dirToP, err := p.Sub(circleCenter).Normalize()
	if err != nil {
		return Cubic{}, err
	}
	curveEnd := circleCenter.Add(dirToP.Scale(actualR))

	circleTangent := curveEnd.Sub(circleCenter).Rotate90()
	anchorEnd, ok := lineIntersection(sideStart, sideDirection, curveEnd, circleTangent)
	if !ok {
		anchorEnd = circleSegmentIntersection
	}

	anchorStart := mulPoint(addPoints(curveStart, mulPoint(anchorEnd, 2.0)), 1.0/3.0)

	return NewCubic(curveStart, anchorStart, anchorEnd, curveEnd), nil
}

// getCubics computes the cubics that replace this corner, given the amount
// of each adjoining side that may be consumed by rounding and smoothing.
// Returns a degenerate (zero-length) cubic at p1 when there is no room, or
// no rounding was requested.
func (rc *roundedCorner) getCubics(allowedCut0, allowedCut1 float32) ([]Cubic, error) {
	allowedCut := minFloat32(allowedCut0, allowedCut1)

	if rc.expectedRoundCut < DistanceEpsilon || allowedCut < DistanceEpsilon || rc.cornerRadius < DistanceEpsilon {
		rc.center = rc.p1
		return []Cubic{StraightLine(rc.p1, rc.p1)}, nil
	}

	actualRoundCut := minFloat32(allowedCut, rc.expectedRoundCut)
	actualSmoothing0 := rc.calculateActualSmoothingValue(allowedCut0)
	actualSmoothing1 := rc.calculateActualSmoothingValue(allowedCut1)
	actualR := rc.cornerRadius * actualRoundCut / rc.expectedRoundCut
	centerDistance := math32.Hypot(actualR, actualRoundCut)

	avgDir, err := rc.d1.Add(rc.d2).Div(2.0).Normalize()
	if err != nil {
		return nil, err
	}
	rc.center = rc.p1.Add(avgDir.Scale(centerDistance))

	circleIntersection0 := rc.p1.Add(rc.d1.Scale(actualRoundCut))
	circleIntersection2 := rc.p1.Add(rc.d2.Scale(actualRoundCut))

	flanking0, err := computeFlankingCurve(
		actualRoundCut, actualSmoothing0,
		rc.p1, rc.p0, circleIntersection0, circleIntersection2, rc.center, actualR,
	)
	if err != nil {
		return nil, err
	}

	flanking2, err := computeFlankingCurve(
		actualRoundCut, actualSmoothing1,
		rc.p1, rc.p2, circleIntersection2, circleIntersection0, rc.center, actualR,
	)
	if err != nil {
		return nil, err
	}
	flanking2 = flanking2.Reversed()

	flanking1, err := CircularArc(rc.center, flanking0.Anchor1, flanking2.Anchor0)
	if err != nil {
		return nil, err
	}

	return []Cubic{flanking0, flanking1, flanking2}, nil
}
