package shapes

import "testing"

const testEpsilon = 1e-3

func approxEqual(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func approxPoint(t *testing.T, name string, got, want Point, epsilon float32) {
	t.Helper()
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Y, want.Y, epsilon) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}
