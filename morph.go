package shapes

// Morph pairs up cubics from two RoundedPolygons so that linearly
// interpolating their control points at any progress in [0, 1] produces a
// coherent in-between shape.
//
// Grounded in original_source's morph.rs Morph.
type Morph struct {
	start, end RoundedPolygon
	match      []cubicPair
}

type cubicPair struct {
	start, end Cubic
}

// NewMorph builds a Morph between start and end by measuring both outlines
// by arc length, matching their corner features, and sweeping through both
// cubic sequences in lockstep, cutting whichever curve extends further at
// the point where the other one ends, so every matched pair spans the same
// outline progress.
func NewMorph(start, end RoundedPolygon) (Morph, error) {
	match, err := matchMorph(start, end)
	if err != nil {
		return Morph{}, err
	}
	return Morph{start: start, end: end, match: match}, nil
}

// AsCubics returns the interpolated outline at the given progress in
// [0, 1]: 0 reproduces the start polygon, 1 the end polygon.
func (m Morph) AsCubics(progress float32) []Cubic {
	var cubics []Cubic

	var firstCubic, lastCubic *Cubic
	for i := range m.match {
		pair := m.match[i]
		interpolated := Cubic{
			Anchor0:  pair.start.Anchor0.Lerp(pair.end.Anchor0, progress),
			Control0: pair.start.Control0.Lerp(pair.end.Control0, progress),
			Control1: pair.start.Control1.Lerp(pair.end.Control1, progress),
			Anchor1:  pair.start.Anchor1.Lerp(pair.end.Anchor1, progress),
		}

		if firstCubic == nil {
			fc := interpolated
			firstCubic = &fc
		}
		if lastCubic != nil {
			cubics = append(cubics, *lastCubic)
		}
		lc := interpolated
		lastCubic = &lc
	}

	if lastCubic != nil && firstCubic != nil {
		cubics = append(cubics, NewCubic(lastCubic.Anchor0, lastCubic.Control0, lastCubic.Control1, firstCubic.Anchor0))
	}

	return cubics
}

// AddTo feeds the interpolated outline at the given progress to sink. See
// AddCubics for the meaning of repeatPath and closePath.
func (m Morph) AddTo(sink PathSink, progress float32, repeatPath, closePath bool) {
	AddCubics(sink, repeatPath, closePath, m.AsCubics(progress))
}

// matchMorph implements the 0/0-with-pre-advance sweep: both cubic-index
// cursors start at 0 and each is advanced past its current cubic before
// the next comparison, rather than starting at 1 as in the original
// reference (which effectively treats index 0 as already consumed). The
// rest of the sweep — measuring, feature mapping, cut-and-shift, and the
// segment-cutting comparison — follows the reference exactly.
func matchMorph(p1, p2 RoundedPolygon) ([]cubicPair, error) {
	measurer := LengthMeasurer{}
	measured1 := MeasurePolygon(measurer, p1)
	measured2 := MeasurePolygon(measurer, p2)

	mapper, err := NewDoubleMapperFromFeatures(measured1.Features, measured2.Features)
	if err != nil {
		return nil, err
	}

	cutPoint, err := mapper.Map(0.0)
	if err != nil {
		return nil, err
	}

	bs1 := measured1
	bs2, err := measured2.CutAndShift(cutPoint)
	if err != nil {
		return nil, err
	}

	var result []cubicPair

	i1, i2 := 0, 0
	var b1, b2 *MeasuredCubic
	if len(bs1.Cubics) > 0 {
		c := bs1.Cubics[0]
		b1 = &c
	}
	if len(bs2.Cubics) > 0 {
		c := bs2.Cubics[0]
		b2 = &c
	}
	i1++
	i2++

	for b1 != nil && b2 != nil {
		bb1, bb2 := *b1, *b2

		b1a := float32(1.0)
		if i1 != len(bs1.Cubics) {
			b1a = bb1.EndOutlineProgress
		}

		b2a := float32(1.0)
		if i2 != len(bs2.Cubics) {
			mapped, err := mapper.MapBack(positiveModuloF(bb2.EndOutlineProgress+cutPoint, 1.0))
			if err != nil {
				return nil, err
			}
			b2a = mapped
		}

		minB := minFloat32(b1a, b2a)

		var seg1 MeasuredCubic
		if b1a > minB+AngleEpsilon {
			a, rest := bb1.cutAtProgress(bs1.measurer, minB)
			seg1 = a
			b1 = &rest
		} else {
			seg1 = bb1
			if i1 < len(bs1.Cubics) {
				c := bs1.Cubics[i1]
				b1 = &c
			} else {
				b1 = nil
			}
			i1++
		}

		var seg2 MeasuredCubic
		if b2a > minB+AngleEpsilon {
			target, err := mapper.Map(minB)
			if err != nil {
				return nil, err
			}
			a, rest := bb2.cutAtProgress(bs2.measurer, positiveModuloF(target-cutPoint, 1.0))
			seg2 = a
			b2 = &rest
		} else {
			seg2 = bb2
			if i2 < len(bs2.Cubics) {
				c := bs2.Cubics[i2]
				b2 = &c
			} else {
				b2 = nil
			}
			i2++
		}

		result = append(result, cubicPair{start: seg1.Cubic, end: seg2.Cubic})
	}

	if b1 != nil || b2 != nil {
		return nil, ErrUnmatchedMorph
	}

	return result, nil
}

func positiveModuloF(a, m float32) float32 {
	return PositiveModulo(a, m)
}
