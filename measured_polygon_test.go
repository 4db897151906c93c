package shapes

import "testing"

func TestMeasurePolygonCoversFullProgress(t *testing.T) {
	poly, err := Rectangle(4, 4)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	measured := MeasurePolygon(LengthMeasurer{}, poly)

	if len(measured.Cubics) == 0 {
		t.Fatal("MeasurePolygon() produced no cubics")
	}
	if got := measured.Cubics[0].StartOutlineProgress; !approxEqual(got, 0, testEpsilon) {
		t.Errorf("first StartOutlineProgress = %v, want 0", got)
	}
	last := measured.Cubics[len(measured.Cubics)-1]
	if !approxEqual(last.EndOutlineProgress, 1, testEpsilon) {
		t.Errorf("last EndOutlineProgress = %v, want 1", last.EndOutlineProgress)
	}

	// Progress should be monotonically non-decreasing across cubics.
	for i := 1; i < len(measured.Cubics); i++ {
		if measured.Cubics[i].StartOutlineProgress < measured.Cubics[i-1].StartOutlineProgress {
			t.Errorf("progress not monotonic at index %d", i)
		}
	}
}

func TestMeasuredCubicCutAtProgress(t *testing.T) {
	poly, err := Rectangle(4, 4)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	measured := MeasurePolygon(LengthMeasurer{}, poly)
	mc := measured.Cubics[0]

	mid := (mc.StartOutlineProgress + mc.EndOutlineProgress) / 2
	left, right := mc.cutAtProgress(LengthMeasurer{}, mid)

	if !approxEqual(left.StartOutlineProgress, mc.StartOutlineProgress, testEpsilon) {
		t.Errorf("left.StartOutlineProgress = %v, want %v", left.StartOutlineProgress, mc.StartOutlineProgress)
	}
	if !approxEqual(left.EndOutlineProgress, mid, testEpsilon) {
		t.Errorf("left.EndOutlineProgress = %v, want %v", left.EndOutlineProgress, mid)
	}
	if !approxEqual(right.StartOutlineProgress, mid, testEpsilon) {
		t.Errorf("right.StartOutlineProgress = %v, want %v", right.StartOutlineProgress, mid)
	}
	if !approxEqual(right.EndOutlineProgress, mc.EndOutlineProgress, testEpsilon) {
		t.Errorf("right.EndOutlineProgress = %v, want %v", right.EndOutlineProgress, mc.EndOutlineProgress)
	}

	approxPoint(t, "continuity", left.Cubic.Anchor1, right.Cubic.Anchor0, testEpsilon)
}

func TestCutAndShiftRejectsOutOfRange(t *testing.T) {
	poly, err := Rectangle(4, 4)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	measured := MeasurePolygon(LengthMeasurer{}, poly)

	if _, err := measured.CutAndShift(-0.1); err != ErrProgressOutOfRange {
		t.Errorf("CutAndShift(-0.1) error = %v, want ErrProgressOutOfRange", err)
	}
	if _, err := measured.CutAndShift(1.1); err != ErrProgressOutOfRange {
		t.Errorf("CutAndShift(1.1) error = %v, want ErrProgressOutOfRange", err)
	}
}

func TestCutAndShiftMakesCutPointTheNewStart(t *testing.T) {
	poly, err := Rectangle(4, 4)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	measured := MeasurePolygon(LengthMeasurer{}, poly)

	shifted, err := measured.CutAndShift(0.3)
	if err != nil {
		t.Fatalf("CutAndShift() error = %v", err)
	}
	if len(shifted.Cubics) == 0 {
		t.Fatal("CutAndShift() produced no cubics")
	}
	if got := shifted.Cubics[0].StartOutlineProgress; !approxEqual(got, 0, testEpsilon) {
		t.Errorf("shifted first StartOutlineProgress = %v, want 0", got)
	}
	last := shifted.Cubics[len(shifted.Cubics)-1]
	if !approxEqual(last.EndOutlineProgress, 1, testEpsilon) {
		t.Errorf("shifted last EndOutlineProgress = %v, want 1", last.EndOutlineProgress)
	}
}

func TestCutAndShiftNearZeroIsNoop(t *testing.T) {
	poly, err := Rectangle(4, 4)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	measured := MeasurePolygon(LengthMeasurer{}, poly)

	shifted, err := measured.CutAndShift(0.0000001)
	if err != nil {
		t.Fatalf("CutAndShift() error = %v", err)
	}
	if len(shifted.Cubics) != len(measured.Cubics) {
		t.Errorf("CutAndShift(~0) changed cubic count: got %d, want %d", len(shifted.Cubics), len(measured.Cubics))
	}
}
