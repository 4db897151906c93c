package shapes

import "testing"

func TestStraightLine(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(9, 0))
	approxPoint(t, "Anchor0", c.Anchor0, Pt(0, 0), testEpsilon)
	approxPoint(t, "Control0", c.Control0, Pt(3, 0), testEpsilon)
	approxPoint(t, "Control1", c.Control1, Pt(6, 0), testEpsilon)
	approxPoint(t, "Anchor1", c.Anchor1, Pt(9, 0), testEpsilon)
}

func TestCubicEvalEndpoints(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(10, 10))
	approxPoint(t, "Eval(0)", c.Eval(0), c.Anchor0, testEpsilon)
	approxPoint(t, "Eval(1)", c.Eval(1), c.Anchor1, testEpsilon)
	approxPoint(t, "Eval(0.5)", c.Eval(0.5), Pt(5, 5), testEpsilon)
}

func TestCubicReversed(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	r := c.Reversed()
	approxPoint(t, "Reversed Anchor0", r.Anchor0, c.Anchor1, testEpsilon)
	approxPoint(t, "Reversed Control0", r.Control0, c.Control1, testEpsilon)
	approxPoint(t, "Reversed Control1", r.Control1, c.Control0, testEpsilon)
	approxPoint(t, "Reversed Anchor1", r.Anchor1, c.Anchor0, testEpsilon)
}

func TestCubicTransformed(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(1, 0))
	translated := c.Transformed(Translate(5, 5))
	approxPoint(t, "Transformed Anchor0", translated.Anchor0, Pt(5, 5), testEpsilon)
	approxPoint(t, "Transformed Anchor1", translated.Anchor1, Pt(6, 5), testEpsilon)
}

func TestCubicZeroLength(t *testing.T) {
	c := StraightLine(Pt(1, 1), Pt(1, 1))
	if !c.ZeroLength() {
		t.Error("ZeroLength() = false, want true")
	}
	c2 := StraightLine(Pt(0, 0), Pt(1, 0))
	if c2.ZeroLength() {
		t.Error("ZeroLength() = true, want false")
	}
}

func TestCubicSplit(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(10, 0))
	left, right := c.Split(0.5)

	approxPoint(t, "left.Anchor0", left.Anchor0, c.Anchor0, testEpsilon)
	approxPoint(t, "left.Anchor1", left.Anchor1, Pt(5, 0), testEpsilon)
	approxPoint(t, "right.Anchor0", right.Anchor0, Pt(5, 0), testEpsilon)
	approxPoint(t, "right.Anchor1", right.Anchor1, c.Anchor1, testEpsilon)

	// The split should reproduce the same points as evaluating the original
	// curve at several parameters.
	for _, tt := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		want := c.Eval(tt)
		var got Point
		if tt <= 0.5 {
			got = left.Eval(tt / 0.5)
		} else {
			got = right.Eval((tt - 0.5) / 0.5)
		}
		approxPoint(t, "split reconstruction", got, want, testEpsilon)
	}
}

func TestCubicAABBApproximate(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	b := c.AABB(true)
	approxPoint(t, "approx Min", b.Min, Pt(0, 0), testEpsilon)
	approxPoint(t, "approx Max", b.Max, Pt(10, 10), testEpsilon)
}

func TestCubicAABBExactZeroLength(t *testing.T) {
	c := StraightLine(Pt(2, 3), Pt(2, 3))
	b := c.AABB(false)
	approxPoint(t, "Min", b.Min, Pt(2, 3), testEpsilon)
	approxPoint(t, "Max", b.Max, Pt(2, 3), testEpsilon)
}

func TestCubicAddMulDiv(t *testing.T) {
	c := NewCubic(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4))
	sum := c.Add(c)
	approxPoint(t, "Add Anchor0", sum.Anchor0, Pt(2, 2), testEpsilon)

	scaled := c.Mul(2)
	approxPoint(t, "Mul Anchor1", scaled.Anchor1, Pt(8, 8), testEpsilon)

	divided := scaled.Div(2)
	approxPoint(t, "Div Anchor1", divided.Anchor1, c.Anchor1, testEpsilon)
}

func TestCircularArcStraightLineFallback(t *testing.T) {
	center := Pt(0, 0)
	p0 := Pt(1, 0)
	p1 := Pt(1.0001, 0.0001)
	c, err := CircularArc(center, p0, p1)
	if err != nil {
		t.Fatalf("CircularArc() error = %v", err)
	}
	approxPoint(t, "Anchor0", c.Anchor0, p0, testEpsilon)
	approxPoint(t, "Anchor1", c.Anchor1, p1, testEpsilon)
}

func TestCircularArcQuarterCircle(t *testing.T) {
	center := Pt(0, 0)
	p0 := Pt(1, 0)
	p1 := Pt(0, 1)
	c, err := CircularArc(center, p0, p1)
	if err != nil {
		t.Fatalf("CircularArc() error = %v", err)
	}
	// Midpoint of the arc should be roughly at distance 1 from the center.
	mid := c.Eval(0.5)
	dist := mid.Sub(center).Length()
	if !approxEqual(dist, 1, 0.05) {
		t.Errorf("arc midpoint distance from center = %v, want ~1", dist)
	}
}
