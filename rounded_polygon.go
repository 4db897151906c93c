package shapes

import "github.com/chewxy/math32"

// RoundedPolygon is a closed polygonal shape with optionally rounded
// corners, represented as an ordered list of Features and the flattened
// list of Cubics that trace its outline.
//
// Grounded in original_source's rounded_polygon.rs RoundedPolygon.
type RoundedPolygon struct {
	Features []Feature
	Center   Point
	Cubics   []Cubic
}

// NewRoundedPolygon stitches features into a single closed, gap-free list
// of cubics. The first and last anchor points are forced to match exactly,
// since even sub-pixel drift there can produce rendering artifacts.
func NewRoundedPolygon(features []Feature, center Point) RoundedPolygon {
	var cubics []Cubic

	var firstFeatureSplitStart, firstFeatureSplitEnd []Cubic
	if len(features) > 0 && len(features[0].Cubics) == 3 {
		centerCubic := features[0].Cubics[1]
		start, end := centerCubic.Split(0.5)
		firstFeatureSplitStart = []Cubic{features[0].Cubics[0], start}
		firstFeatureSplitEnd = []Cubic{end, features[0].Cubics[2]}
	}

	var firstCubic, lastCubic *Cubic
	hasFirst := false
	hasLast := false

	// Iterating one index past the feature list lets the initial split
	// cubic (if any) be appended at the very end.
	for i := 0; i <= len(features); i++ {
		var featureCubics []Cubic
		switch {
		case i == 0 && firstFeatureSplitEnd != nil:
			featureCubics = firstFeatureSplitEnd
		case i == len(features):
			if firstFeatureSplitStart == nil {
				continue
			}
			featureCubics = firstFeatureSplitStart
		default:
			featureCubics = features[i].Cubics
		}

		for _, cubic := range featureCubics {
			if !cubic.ZeroLength() {
				if hasLast {
					cubics = append(cubics, *lastCubic)
				}
				c := cubic
				lastCubic = &c
				hasLast = true
				if !hasFirst {
					fc := cubic
					firstCubic = &fc
					hasFirst = true
				}
			} else if hasLast {
				// Dropping a run of near-zero-length curves can otherwise
				// leave a visible discontinuity; keep the last cubic's end
				// anchor current.
				lastCubic.Anchor1 = cubic.Anchor1
			}
		}
	}

	if hasFirst && hasLast {
		cubics = append(cubics, NewCubic(lastCubic.Anchor0, lastCubic.Control0, lastCubic.Control1, firstCubic.Anchor0))
	} else {
		cubics = append(cubics, NewCubic(center, center, center, center))
	}

	return RoundedPolygon{Features: features, Center: center, Cubics: cubics}
}

// NewRoundedPolygonFromFeatures builds a polygon from features, deriving
// its center from the feature anchors when center is not supplied.
func NewRoundedPolygonFromFeatures(features []Feature, center *Point) RoundedPolygon {
	if center != nil {
		return NewRoundedPolygon(features, *center)
	}

	var vertices []float32
	for _, f := range features {
		for _, c := range f.Cubics {
			vertices = append(vertices, c.Anchor0.X, c.Anchor0.Y)
		}
	}
	return NewRoundedPolygon(features, centerFromVertices(vertices))
}

// FromVertices builds a rounded polygon from a flat (x0, y0, x1, y1, ...)
// vertex array, applying rounding to each vertex before stitching the
// outline together.
//
// perVertexRounding, if non-empty, must have one entry per vertex and
// overrides rounding for that vertex specifically.
func FromVertices(vertices []float32, rounding CornerRounding, perVertexRounding []CornerRounding, center Point) (RoundedPolygon, error) {
	if len(vertices) < 6 {
		return RoundedPolygon{}, ErrInvalidVertexCount
	}
	if len(vertices)%2 != 0 {
		return RoundedPolygon{}, ErrVertexArrayMisshape
	}
	n := len(vertices) / 2
	if len(perVertexRounding) != 0 && len(perVertexRounding) != n {
		return RoundedPolygon{}, ErrPerVertexRoundingLengthMismatch
	}

	vertexAt := func(i int) Point {
		return Point{X: vertices[i*2], Y: vertices[i*2+1]}
	}

	roundedCorners := make([]*roundedCorner, n)
	for i := 0; i < n; i++ {
		vtxRounding := rounding
		if len(perVertexRounding) != 0 {
			vtxRounding = perVertexRounding[i]
		}
		prevIndex := (i + n - 1) % n
		nextIndex := (i + 1) % n
		roundedCorners[i] = newRoundedCorner(vertexAt(prevIndex), vertexAt(i), vertexAt(nextIndex), vtxRounding)
	}

	type cutAdjust struct {
		roundCutRatio, cutRatio float32
	}
	cutAdjusts := make([]cutAdjust, n)
	for ix := 0; ix < n; ix++ {
		next := (ix + 1) % n
		expectedRoundCut := roundedCorners[ix].expectedRoundCut + roundedCorners[next].expectedRoundCut
		expectedCut := roundedCorners[ix].expectedCut() + roundedCorners[next].expectedCut()
		sideSize := math32.Hypot(vertices[ix*2]-vertices[next*2], vertices[ix*2+1]-vertices[next*2+1])

		switch {
		case expectedRoundCut > sideSize:
			cutAdjusts[ix] = cutAdjust{roundCutRatio: sideSize / expectedRoundCut, cutRatio: 0}
		case expectedCut > sideSize:
			cutAdjusts[ix] = cutAdjust{roundCutRatio: 1, cutRatio: (sideSize - expectedRoundCut) / (expectedCut - expectedRoundCut)}
		default:
			cutAdjusts[ix] = cutAdjust{roundCutRatio: 1, cutRatio: 1}
		}
	}

	corners := make([][]Cubic, n)
	for i := 0; i < n; i++ {
		var allowedCuts [2]float32
		for delta := 0; delta <= 1; delta++ {
			adj := cutAdjusts[(i+n-1+delta)%n]
			allowedCuts[delta] = roundedCorners[i].expectedRoundCut*adj.roundCutRatio +
				(roundedCorners[i].expectedCut()-roundedCorners[i].expectedRoundCut)*adj.cutRatio
		}

		cubics, err := roundedCorners[i].getCubics(allowedCuts[0], allowedCuts[1])
		if err != nil {
			return RoundedPolygon{}, err
		}
		corners[i] = cubics
	}

	features := make([]Feature, 0, n*2)
	for i := 0; i < n; i++ {
		prevVtxIndex := (i + n - 1) % n
		nextVtxIndex := (i + 1) % n
		currVertex := vertexAt(i)
		prevVertex := vertexAt(prevVtxIndex)
		nextVertex := vertexAt(nextVtxIndex)
		convex := IsConvex(prevVertex, currVertex, nextVertex)

		features = append(features, CornerFeature(corners[i], convex))
		nextCorner := corners[(i+1)%n]
		features = append(features, EdgeFeature([]Cubic{
			StraightLine(corners[i][len(corners[i])-1].Anchor1, nextCorner[0].Anchor0),
		}))
	}

	return NewRoundedPolygon(features, center), nil
}

func centerFromVertices(vertices []float32) Point {
	var sumX, sumY float32
	for i := 0; i+1 < len(vertices); i += 2 {
		sumX += vertices[i]
		sumY += vertices[i+1]
	}
	count := float32(len(vertices)) / 2.0
	return Point{X: sumX / count, Y: sumY / count}
}

// Transformed returns a copy of the polygon with every point transformed by
// t.
func (p RoundedPolygon) Transformed(t PointTransformer) RoundedPolygon {
	center := t.TransformPoint(p.Center)
	features := make([]Feature, len(p.Features))
	for i, f := range p.Features {
		features[i] = f.Transformed(t)
	}
	return NewRoundedPolygon(features, center)
}

// AABB returns an axis-aligned bounding box for the polygon's outline.
// See Cubic.AABB for the meaning of approximate.
func (p RoundedPolygon) AABB(approximate bool) AABB {
	const maxFloat32 float32 = 3.402823466e+38
	result := AABB{
		Min: Point{X: maxFloat32, Y: maxFloat32},
		Max: Point{X: -maxFloat32, Y: -maxFloat32},
	}
	for _, c := range p.Cubics {
		result = result.Union(c.AABB(approximate))
	}
	return result
}

// Normalized returns the polygon moved and scaled so that it fits entirely
// within the unit square [0,1]x[0,1], centered along whichever axis has
// slack space.
func (p RoundedPolygon) Normalized() RoundedPolygon {
	bounds := p.AABB(true)
	width := bounds.Width()
	height := bounds.Height()
	maxSide := width
	if height > maxSide {
		maxSide = height
	}

	offset := Vector{
		X: (maxSide-width)/2.0 - bounds.Min.X,
		Y: (maxSide-height)/2.0 - bounds.Min.Y,
	}

	return p.Transformed(TransformerFunc(func(point Point) Point {
		return Point{X: (point.X + offset.X) / maxSide, Y: (point.Y + offset.Y) / maxSide}
	}))
}

// AddTo feeds the polygon's cubics to sink. See AddCubics for the meaning
// of repeatPath and closePath.
func (p RoundedPolygon) AddTo(sink PathSink, repeatPath, closePath bool) {
	AddCubics(sink, repeatPath, closePath, p.Cubics)
}
