package shapes

import "github.com/chewxy/math32"

// Cubic holds the four points of a cubic Bézier curve: two anchors at the
// start and end, and two control points between them.
//
// Grounded in original_source's cubic.rs, converted from the Rust reference
// to Go with float32 coordinates, following the teacher's CubicBez in
// curve.go for the Go-idiomatic surface (Eval, Split, AABB).
type Cubic struct {
	Anchor0, Control0, Control1, Anchor1 Point
}

// NewCubic builds a Cubic from its four points.
func NewCubic(anchor0, control0, control1, anchor1 Point) Cubic {
	return Cubic{Anchor0: anchor0, Control0: control0, Control1: control1, Anchor1: anchor1}
}

// StraightLine returns a cubic that traces a straight line from start to
// end, with control points placed at the one-third and two-thirds marks.
func StraightLine(start, end Point) Cubic {
	return Cubic{
		Anchor0:  start,
		Control0: start.Lerp(end, 1.0/3.0),
		Control1: start.Lerp(end, 2.0/3.0),
		Anchor1:  end,
	}
}

// CircularArc returns a cubic Bézier approximation of the circular arc
// around center from p0 to p1. If the angle the arc subtends at center is
// tiny (its cosine exceeds 0.999), a straight line is returned instead.
func CircularArc(center, p0, p1 Point) (Cubic, error) {
	p0d, err := p0.Sub(center).Normalize()
	if err != nil {
		return Cubic{}, err
	}
	p1d, err := p1.Sub(center).Normalize()
	if err != nil {
		return Cubic{}, err
	}
	rotatedP0 := p0d.Rotate90()
	rotatedP1 := p1d.Rotate90()
	clockwise := rotatedP0.Dot(p1.Sub(center)) >= 0.0
	cosa := p0d.Dot(p1d)

	if cosa > 0.999 {
		return StraightLine(p0, p1), nil
	}

	k := math32.Hypot(p0.X-center.X, p0.Y-center.Y) * 4.0 / 3.0 *
		(math32.Sqrt(2.0*(1.0-cosa)) - math32.Sqrt(1.0-cosa*cosa)) / (1.0 - cosa)
	if !clockwise {
		k = -k
	}

	return Cubic{
		Anchor0:  p0,
		Control0: p0.Add(rotatedP0.Scale(k)),
		Control1: p1.Add(rotatedP1.Scale(-k)),
		Anchor1:  p1,
	}, nil
}

// Reversed returns the curve with its points reversed, i.e. anchor0 swapped
// with anchor1 and control0 swapped with control1.
func (c Cubic) Reversed() Cubic {
	return Cubic{Anchor0: c.Anchor1, Control0: c.Control1, Control1: c.Control0, Anchor1: c.Anchor0}
}

// Transformed returns the curve with each point transformed by t.
func (c Cubic) Transformed(t PointTransformer) Cubic {
	return Cubic{
		Anchor0:  t.TransformPoint(c.Anchor0),
		Control0: t.TransformPoint(c.Control0),
		Control1: t.TransformPoint(c.Control1),
		Anchor1:  t.TransformPoint(c.Anchor1),
	}
}

// ZeroLength reports whether the curve's two anchors are within
// DistanceEpsilon of each other.
func (c Cubic) ZeroLength() bool {
	return math32.Abs(c.Anchor0.X-c.Anchor1.X) < DistanceEpsilon &&
		math32.Abs(c.Anchor0.Y-c.Anchor1.Y) < DistanceEpsilon
}

// Eval returns the point on the curve at parameter t in [0, 1], the
// proportional distance along the curve between its anchors.
func (c Cubic) Eval(t float32) Point {
	u := 1.0 - t
	w0 := u * u * u
	w1 := 3.0 * t * u * u
	w2 := 3.0 * t * t * u
	w3 := t * t * t
	return Point{
		X: c.Anchor0.X*w0 + c.Control0.X*w1 + c.Control1.X*w2 + c.Anchor1.X*w3,
		Y: c.Anchor0.Y*w0 + c.Control0.Y*w1 + c.Control1.Y*w2 + c.Anchor1.Y*w3,
	}
}

// Split divides the curve at parameter t, returning two cubics that
// together trace the same path as c.
func (c Cubic) Split(t float32) (Cubic, Cubic) {
	u := 1.0 - t
	mid := c.Eval(t)

	left := Cubic{
		Anchor0:  c.Anchor0,
		Control0: lerpComponents(c.Anchor0, c.Control0, u, t),
		Control1: Point{
			X: c.Control1.X*t*t + c.Anchor0.X*u*u + c.Control0.X*2*u*t,
			Y: c.Control1.Y*t*t + c.Anchor0.Y*u*u + c.Control0.Y*2*u*t,
		},
		Anchor1: mid,
	}
	right := Cubic{
		Anchor0: mid,
		Control0: Point{
			X: c.Anchor1.X*t*t + c.Control0.X*u*u + c.Control1.X*2*u*t,
			Y: c.Anchor1.Y*t*t + c.Control0.Y*u*u + c.Control1.Y*2*u*t,
		},
		Control1: lerpComponents(c.Control1, c.Anchor1, u, t),
		Anchor1:  c.Anchor1,
	}
	return left, right
}

func lerpComponents(a, b Point, wa, wb float32) Point {
	return Point{X: a.X*wa + b.X*wb, Y: a.Y*wa + b.Y*wb}
}

// AABB returns an axis-aligned bounding box for the curve.
//
// When approximate is true, it uses the fast-but-loose bounding box of all
// four points. Otherwise it finds the curve's derivative, a quadratic
// Bézier, and solves for its roots to locate the exact extrema.
func (c Cubic) AABB(approximate bool) AABB {
	if c.ZeroLength() {
		return NewAABB(c.Anchor0, c.Anchor0)
	}

	min := c.Anchor0.Min(c.Anchor1)
	max := c.Anchor0.Max(c.Anchor1)

	if approximate {
		min = min.Min(c.Control0.Min(c.Control1))
		max = max.Max(c.Control0.Max(c.Control1))
		return AABB{Min: min, Max: max}
	}

	xa := 3*(c.Control0.X-c.Control1.X) - c.Anchor0.X + c.Anchor1.X
	xb := 2 * (c.Anchor0.X + c.Control1.X - 2*c.Control0.X)
	xc := c.Control0.X - c.Anchor0.X
	min.X, max.X = c.extremeOnAxis(xa, xb, xc, min.X, max.X, true)

	ya := 3*(c.Control0.Y-c.Control1.Y) - c.Anchor0.Y + c.Anchor1.Y
	yb := 2 * (c.Anchor0.Y + c.Control1.Y - 2*c.Control0.Y)
	yc := c.Control0.Y - c.Anchor0.Y
	min.Y, max.Y = c.extremeOnAxis(ya, yb, yc, min.Y, max.Y, false)

	return AABB{Min: min, Max: max}
}

func (c Cubic) extremeOnAxis(a, b, cc, min, max float32, isX bool) (float32, float32) {
	for _, t := range solveQuadraticInUnitInterval(a, b, cc) {
		p := c.Eval(t)
		v := p.Y
		if isX {
			v = p.X
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Add returns the cubic whose points are the componentwise sum of c and
// other's points, used when interpolating between matched cubics of two
// polygons.
func (c Cubic) Add(other Cubic) Cubic {
	return Cubic{
		Anchor0:  addPoints(c.Anchor0, other.Anchor0),
		Control0: addPoints(c.Control0, other.Control0),
		Control1: addPoints(c.Control1, other.Control1),
		Anchor1:  addPoints(c.Anchor1, other.Anchor1),
	}
}

// Mul returns the cubic with every point scaled by s.
func (c Cubic) Mul(s float32) Cubic {
	return Cubic{
		Anchor0:  mulPoint(c.Anchor0, s),
		Control0: mulPoint(c.Control0, s),
		Control1: mulPoint(c.Control1, s),
		Anchor1:  mulPoint(c.Anchor1, s),
	}
}

// Div returns the cubic with every point divided by s.
func (c Cubic) Div(s float32) Cubic {
	return c.Mul(1.0 / s)
}

func addPoints(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func mulPoint(a Point, s float32) Point {
	return Point{X: a.X * s, Y: a.Y * s}
}
