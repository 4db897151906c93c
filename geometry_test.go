package shapes

import (
	"math"
	"testing"
)

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name               string
		prev, current, next Point
		want               bool
	}{
		{"left turn", Pt(0, 0), Pt(1, 0), Pt(1, 1), true},
		{"right turn", Pt(0, 0), Pt(1, 0), Pt(1, -1), false},
		{"straight", Pt(0, 0), Pt(1, 0), Pt(2, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConvex(tt.prev, tt.current, tt.next); got != tt.want {
				t.Errorf("IsConvex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRadialToCartesian(t *testing.T) {
	v := RadialToCartesian(1, 0)
	approxVector(t, "RadialToCartesian(1,0)", v, Vec(1, 0), testEpsilon)

	v2 := RadialToCartesian(2, float32(math.Pi/2))
	approxVector(t, "RadialToCartesian(2,pi/2)", v2, Vec(0, 2), testEpsilon)
}

func TestProgressInRange(t *testing.T) {
	tests := []struct {
		name           string
		progress, from, to float32
		want           bool
	}{
		{"simple in range", 0.5, 0.2, 0.8, true},
		{"simple out of range", 0.9, 0.2, 0.8, false},
		{"wrapping in range", 0.9, 0.8, 0.2, true},
		{"wrapping out of range", 0.5, 0.8, 0.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressInRange(tt.progress, tt.from, tt.to); got != tt.want {
				t.Errorf("ProgressInRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircularDistance(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 float32
		want   float32
	}{
		{"simple", 0.3, 0.5, 0.2},
		{"wrapping", 0.05, 0.95, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircularDistance(tt.p1, tt.p2); !approxEqual(got, tt.want, testEpsilon) {
				t.Errorf("CircularDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositiveModulo(t *testing.T) {
	tests := []struct {
		name string
		a, m float32
		want float32
	}{
		{"positive", 1.5, 1.0, 0.5},
		{"negative", -0.3, 1.0, 0.7},
		{"exact multiple", -1.0, 1.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositiveModulo(tt.a, tt.m); !approxEqual(got, tt.want, testEpsilon) {
				t.Errorf("PositiveModulo() = %v, want %v", got, tt.want)
			}
		})
	}
}
