package shapes

// PointTransformer maps a Point to another Point, e.g. to apply a rotation,
// translation, or scale before handing coordinates to a PathSink.
//
// Matrix implements PointTransformer directly via its TransformPoint
// method, mirroring the teacher's Path.Transform(m Matrix).
//
// Grounded in original_source's geometry.rs PointTransformer trait, which
// also provides a blanket impl for any `Fn(Point) -> Point`; TransformerFunc
// below is the Go equivalent of that blanket impl.
type PointTransformer interface {
	TransformPoint(p Point) Point
}

// TransformerFunc adapts a plain function to the PointTransformer interface.
type TransformerFunc func(Point) Point

// TransformPoint calls f(p).
func (f TransformerFunc) TransformPoint(p Point) Point {
	return f(p)
}
