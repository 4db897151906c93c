// Package shapes builds closed, rounded 2-D polygonal outlines as piecewise
// cubic Bézier curves and morphs between two such outlines.
//
// # Overview
//
// shapes is a pure geometry kernel: it consumes vertex lists and rounding
// descriptors and produces sequences of cubic Bézier segments. It does not
// render, rasterize, or persist anything — output is handed to a
// caller-supplied PathSink (see pathsink.go) so it can be drawn with
// github.com/gogpu/gg, any other 2-D renderer, or none at all.
//
// # Quick Start
//
//	poly, err := shapes.Circle(8, 100)
//	if err != nil {
//		// handle err
//	}
//	poly.AddTo(sink, false, true)
//
//	start, _ := shapes.Rectangle(200, 100)
//	end, _ := shapes.Star(6, 100, 50)
//	morph, err := shapes.NewMorph(start, end)
//	if err != nil {
//		// handle err
//	}
//	morph.AddTo(sink, 0.5, false, true)
//
// # Architecture
//
//   - Primitives: Point, Vector, Cubic, AABB, Matrix.
//   - Assembly: CornerRounding and the corner-rounding engine, RoundedPolygon
//     and its named constructors (Circle, Rectangle, Star, Pill, PillStar,
//     FromVertices, FromPoints).
//   - Parameterization: Feature, MeasuredPolygon, DoubleMapper.
//   - Morphing: Morph, which pairs up cubics from two RoundedPolygons so that
//     linear interpolation of their control points at any t in [0,1] yields a
//     coherent in-between shape.
//
// # Precision
//
// All coordinates are float32. DistanceEpsilon (1e-4) and AngleEpsilon
// (1e-6) bound the numerical tolerances used throughout; see geometry.go.
package shapes
