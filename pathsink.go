package shapes

// PathSink receives the sequence of drawing commands that trace a
// RoundedPolygon or Morph outline. It is the only I/O-adjacent surface this
// package exposes: callers plug in github.com/gogpu/gg's Path, any other
// 2-D path builder, or a custom recorder.
type PathSink interface {
	MoveTo(p Point)
	LineTo(p Point)
	CubicTo(c1, c2, p Point)
	Close()
}

// AddCubics feeds a sequence of cubics to sink, starting with a MoveTo to
// the first cubic's start anchor, followed by a CubicTo for every cubic.
// If repeatPath is true, the whole sequence is retraced a second time,
// starting with a LineTo back to the first anchor instead of a MoveTo
// (useful for stroking, where the retrace lets a renderer close a cap or
// join without a fresh subpath). If closePath is true, Close is called
// after the last cubic (or the last repeated cubic).
func AddCubics(sink PathSink, repeatPath, closePath bool, cubics []Cubic) {
	if len(cubics) == 0 {
		return
	}

	sink.MoveTo(cubics[0].Anchor0)
	for _, c := range cubics {
		sink.CubicTo(c.Control0, c.Control1, c.Anchor1)
	}

	if repeatPath {
		sink.LineTo(cubics[0].Anchor0)
		for _, c := range cubics {
			sink.CubicTo(c.Control0, c.Control1, c.Anchor1)
		}
	}

	if closePath {
		sink.Close()
	}
}
