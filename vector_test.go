package shapes

import (
	"math"
	"testing"
)

func approxVector(t *testing.T, name string, got, want Vector, epsilon float32) {
	t.Helper()
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Y, want.Y, epsilon) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func TestVectorAddSubScaleDiv(t *testing.T) {
	v := Vec(1, 2)
	w := Vec(3, 4)
	approxVector(t, "Add", v.Add(w), Vec(4, 6), testEpsilon)
	approxVector(t, "Sub", w.Sub(v), Vec(2, 2), testEpsilon)
	approxVector(t, "Scale", v.Scale(2), Vec(2, 4), testEpsilon)
	approxVector(t, "Div", w.Div(2), Vec(1.5, 2), testEpsilon)
	approxVector(t, "Negate", v.Negate(), Vec(-1, -2), testEpsilon)
}

func TestVectorDotCross(t *testing.T) {
	v := Vec(1, 0)
	w := Vec(0, 1)
	if got := v.Dot(w); !approxEqual(got, 0, testEpsilon) {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := v.Cross(w); !approxEqual(got, 1, testEpsilon) {
		t.Errorf("Cross = %v, want 1", got)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vec(3, 4)
	if got := v.Length(); !approxEqual(got, 5, testEpsilon) {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.LengthSquared(); !approxEqual(got, 25, testEpsilon) {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(3, 4)
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got := n.Length(); !approxEqual(got, 1, testEpsilon) {
		t.Errorf("normalized length = %v, want 1", got)
	}

	if _, err := Vec(0, 0).Normalize(); err != ErrZeroDirection {
		t.Errorf("Normalize() on zero vector error = %v, want ErrZeroDirection", err)
	}
}

func TestVectorRotate90(t *testing.T) {
	v := Vec(1, 0)
	approxVector(t, "Rotate90", v.Rotate90(), Vec(0, 1), testEpsilon)
}

func TestVectorRotate(t *testing.T) {
	v := Vec(1, 0)
	got := v.Rotate(float32(math.Pi / 2))
	approxVector(t, "Rotate(pi/2)", got, Vec(0, 1), testEpsilon)
}

func TestVectorLerp(t *testing.T) {
	v := Vec(0, 0)
	w := Vec(10, 10)
	approxVector(t, "Lerp(0.5)", v.Lerp(w, 0.5), Vec(5, 5), testEpsilon)
}

func TestVectorAngle(t *testing.T) {
	v := Vec(1, 0)
	w := Vec(0, 1)
	got := v.Angle(w)
	want := float32(math.Pi / 2)
	if !approxEqual(got, want, testEpsilon) {
		t.Errorf("Angle() = %v, want %v", got, want)
	}
}

func TestVectorIsZero(t *testing.T) {
	if !Vec(0, 0).IsZero() {
		t.Error("IsZero() on zero vector = false, want true")
	}
	if Vec(1, 0).IsZero() {
		t.Error("IsZero() on nonzero vector = true, want false")
	}
}

func TestVectorAsPoint(t *testing.T) {
	v := Vec(3, 4)
	want := Pt(3, 4)
	approxPoint(t, "AsPoint", v.AsPoint(), want, testEpsilon)
}
