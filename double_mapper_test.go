package shapes

import "testing"

func TestIdentityDoubleMapper(t *testing.T) {
	m := IdentityDoubleMapper()
	for _, x := range []float32{0, 0.1, 0.5, 0.9} {
		got, err := m.Map(x)
		if err != nil {
			t.Fatalf("Map(%v) error = %v", x, err)
		}
		if !approxEqual(got, x, testEpsilon) {
			t.Errorf("Map(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestNewDoubleMapperRejectsOutOfRangeProgress(t *testing.T) {
	_, err := NewDoubleMapper([]ProgressPair{{Source: -0.1, Target: 0}, {Source: 0.5, Target: 0.5}})
	if err != ErrProgressOutOfRange {
		t.Errorf("err = %v, want ErrProgressOutOfRange", err)
	}
}

func TestNewDoubleMapperRejectsRepeatedProgress(t *testing.T) {
	_, err := NewDoubleMapper([]ProgressPair{{Source: 0.3, Target: 0}, {Source: 0.3, Target: 0.5}})
	if err != ErrProgressRepeat {
		t.Errorf("err = %v, want ErrProgressRepeat", err)
	}
}

func TestNewDoubleMapperRejectsMultipleWraps(t *testing.T) {
	_, err := NewDoubleMapper([]ProgressPair{
		{Source: 0.1, Target: 0},
		{Source: 0.05, Target: 0.3},
		{Source: 0.02, Target: 0.6},
	})
	if err != ErrMultipleWrap {
		t.Errorf("err = %v, want ErrMultipleWrap", err)
	}
}

func TestDoubleMapperMapAndMapBackRoundTrip(t *testing.T) {
	m, err := NewDoubleMapper([]ProgressPair{{Source: 0.0, Target: 0.25}, {Source: 0.5, Target: 0.75}})
	if err != nil {
		t.Fatalf("NewDoubleMapper() error = %v", err)
	}

	for _, x := range []float32{0.0, 0.25, 0.5} {
		mapped, err := m.Map(x)
		if err != nil {
			t.Fatalf("Map(%v) error = %v", x, err)
		}
		back, err := m.MapBack(mapped)
		if err != nil {
			t.Fatalf("MapBack(%v) error = %v", mapped, err)
		}
		if !approxEqual(back, x, 0.01) {
			t.Errorf("round trip Map/MapBack(%v) = %v, want %v", x, back, x)
		}
	}
}

func TestDoubleMapperMapConcreteValues(t *testing.T) {
	m, err := NewDoubleMapper([]ProgressPair{{Source: 0.0, Target: 0.5}, {Source: 0.1, Target: 0.6}})
	if err != nil {
		t.Fatalf("NewDoubleMapper() error = %v", err)
	}

	if got, err := m.Map(0.3); err != nil || !approxEqual(got, 0.8, testEpsilon) {
		t.Errorf("Map(0.3) = %v, %v, want 0.8", got, err)
	}
	if got, err := m.Map(0.7); err != nil || !approxEqual(got, 0.2, testEpsilon) {
		t.Errorf("Map(0.7) = %v, %v, want 0.2", got, err)
	}
}

func TestDoubleMapperMapRejectsOutOfRange(t *testing.T) {
	m := IdentityDoubleMapper()
	if _, err := m.Map(-0.1); err != ErrProgressOutOfRange {
		t.Errorf("Map(-0.1) error = %v, want ErrProgressOutOfRange", err)
	}
	if _, err := m.Map(1.1); err != ErrProgressOutOfRange {
		t.Errorf("Map(1.1) error = %v, want ErrProgressOutOfRange", err)
	}
}
