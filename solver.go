package shapes

import "github.com/chewxy/math32"

// Quadratic root solving, used by Cubic.AABB's exact mode to find the
// curve's interior extrema.
//
// Adapted from gogpu/gg's solver.go (itself based on kurbo's quadratic
// solver), narrowed to the quadratic case this package needs and converted
// to float32.

// solveQuadratic finds real roots of ax^2 + bx + c = 0, sorted ascending.
//
// Numerically robust: if a is zero or nearly so, falls back to the linear
// root; if all coefficients are effectively zero, returns a single 0.
func solveQuadratic(a, b, c float32) []float32 {
	sc0 := c / a
	sc1 := b / a

	if !isFinite32(sc0) || !isFinite32(sc1) {
		return solveQuadraticLinear(b, c)
	}

	return solveQuadraticNormal(sc0, sc1)
}

func solveQuadraticNormal(sc0, sc1 float32) []float32 {
	arg := sc1*sc1 - 4.0*sc0

	if !isFinite32(arg) {
		return solveQuadraticOverflow(sc0, sc1)
	}

	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float32{-0.5 * sc1}
	}

	root1 := -0.5 * (sc1 + math32.Copysign(math32.Sqrt(arg), sc1))
	root2 := sc0 / root1

	if !isFinite32(root2) {
		return []float32{root1}
	}

	if root1 > root2 {
		return []float32{root2, root1}
	}
	return []float32{root1, root2}
}

func solveQuadraticOverflow(sc0, sc1 float32) []float32 {
	root1 := -sc1
	root2 := sc0 / root1

	if !isFinite32(root2) {
		return []float32{root1}
	}

	if root1 > root2 {
		return []float32{root2, root1}
	}
	return []float32{root1, root2}
}

func solveQuadraticLinear(b, c float32) []float32 {
	root := -c / b
	if isFinite32(root) {
		return []float32{root}
	}

	if c == 0.0 && b == 0.0 {
		return []float32{0.0}
	}

	return nil
}

// solveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 that lie
// in [0, 1], used to find a cubic's interior extrema for its exact AABB.
func solveQuadraticInUnitInterval(a, b, c float32) []float32 {
	const eps = 1e-6

	roots := solveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil
	}

	result := make([]float32, 0, len(roots))
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			switch {
			case r < 0.0:
				r = 0.0
			case r > 1.0:
				r = 1.0
			}
			result = append(result, r)
		}
	}
	return result
}

func isFinite32(x float32) bool {
	return !math32.IsInf(x, 0) && !math32.IsNaN(x)
}
