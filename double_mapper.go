package shapes

// DoubleMapper is a piecewise-linear bijection on the circular [0, 1)
// parameter space, built from a list of matched (source, target) progress
// pairs. It lets a Morph translate "how far along the start outline" into
// "how far along the end outline" and back.
//
// Grounded in original_source's mapper.rs DoubleMapper.
type DoubleMapper struct {
	sourceValues []float32
	targetValues []float32
}

// ProgressPair is one matched (source, target) progress value supplied to
// NewDoubleMapper.
type ProgressPair struct {
	Source, Target float32
}

// IdentityDoubleMapper returns a DoubleMapper where source and target
// progress are the same.
func IdentityDoubleMapper() DoubleMapper {
	mapper, _ := NewDoubleMapper([]ProgressPair{{Source: 0.0, Target: 0.0}, {Source: 0.5, Target: 0.5}})
	return mapper
}

// NewDoubleMapper builds a DoubleMapper from matched progress pairs. Both
// the source and target progress sequences must be monotonically
// increasing around the circular [0, 1) range, with at most one wraparound
// (since progress itself wraps).
func NewDoubleMapper(mappings []ProgressPair) (DoubleMapper, error) {
	sourceValues := make([]float32, len(mappings))
	targetValues := make([]float32, len(mappings))
	for i, m := range mappings {
		sourceValues[i] = m.Source
		targetValues[i] = m.Target
	}

	if err := validateProgress(sourceValues); err != nil {
		return DoubleMapper{}, err
	}
	if err := validateProgress(targetValues); err != nil {
		return DoubleMapper{}, err
	}

	return DoubleMapper{sourceValues: sourceValues, targetValues: targetValues}, nil
}

func validateProgress(p []float32) error {
	if len(p) == 0 {
		return nil
	}
	prev := p[len(p)-1]
	wraps := 0

	for _, curr := range p {
		if curr < 0.0 || curr >= 1.0 {
			return ErrProgressOutOfRange
		}
		if CircularDistance(curr, prev) <= DistanceEpsilon {
			return ErrProgressRepeat
		}
		if curr < prev {
			wraps++
			if wraps > 1 {
				return ErrMultipleWrap
			}
		}
		prev = curr
	}
	return nil
}

// Map returns the target progress corresponding to source progress x.
func (d DoubleMapper) Map(x float32) (float32, error) {
	return linearMap(d.sourceValues, d.targetValues, x)
}

// MapBack returns the source progress corresponding to target progress x.
func (d DoubleMapper) MapBack(x float32) (float32, error) {
	return linearMap(d.targetValues, d.sourceValues, x)
}

func linearMap(xValues, yValues []float32, x float32) (float32, error) {
	if x < 0.0 || x > 1.0 {
		return 0, ErrProgressOutOfRange
	}

	segmentStartIndex := 0
	for i := range xValues {
		if ProgressInRange(x, xValues[i], xValues[(i+1)%len(xValues)]) {
			segmentStartIndex = i
			break
		}
	}

	segmentEndIndex := (segmentStartIndex + 1) % len(xValues)
	segmentSizeX := PositiveModulo(xValues[segmentEndIndex]-xValues[segmentStartIndex], 1.0)
	segmentSizeY := PositiveModulo(yValues[segmentEndIndex]-yValues[segmentStartIndex], 1.0)

	var positionInSegment float32
	if segmentSizeX < 0.001 {
		positionInSegment = 0.5
	} else {
		positionInSegment = PositiveModulo(x-xValues[segmentStartIndex], 1.0) / segmentSizeX
	}

	return PositiveModulo(segmentSizeY*positionInSegment+yValues[segmentStartIndex], 1.0), nil
}
