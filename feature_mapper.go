package shapes

import "sort"

// NewDoubleMapperFromFeatures matches corner features between two
// polygons' outlines by proximity of their representative points, then
// builds a DoubleMapper from the resulting progress pairs.
//
// Matching greedily walks candidate pairs in order of increasing distance,
// skipping any pair that would reuse an already-matched feature, map
// features of opposing convexity/concavity, sit too close to an existing
// mapping, or introduce a crossing — which would make the resulting
// DoubleMapper's segments non-monotonic.
//
// Grounded in original_source's feature_mapper.rs.
func NewDoubleMapperFromFeatures(features1, features2 []ProgressableFeature) (DoubleMapper, error) {
	var filtered1, filtered2 []ProgressableFeature
	for _, f := range features1 {
		if f.Feature.IsCorner() {
			filtered1 = append(filtered1, f)
		}
	}
	for _, f := range features2 {
		if f.Feature.IsCorner() {
			filtered2 = append(filtered2, f)
		}
	}

	type distanceVertex struct {
		distance float32
		i1, i2   int
	}
	var candidates []distanceVertex

	const noMatch = float32(3.402823466e+38) // sentinel "infinite" distance

	for i1, f1 := range filtered1 {
		for i2, f2 := range filtered2 {
			d := featureDistSquared(f1.Feature, f2.Feature)
			if d != noMatch {
				candidates = append(candidates, distanceVertex{distance: d, i1: i1, i2: i2})
			}
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool { return candidates[a].distance < candidates[b].distance })

	switch len(candidates) {
	case 0:
		return NewDoubleMapper([]ProgressPair{{Source: 0.0, Target: 0.0}, {Source: 0.5, Target: 0.5}})
	case 1:
		f1 := filtered1[candidates[0].i1].Progress
		f2 := filtered2[candidates[0].i2].Progress
		return NewDoubleMapper([]ProgressPair{
			{Source: f1, Target: f2},
			{Source: PositiveModulo(f1+0.5, 1.0), Target: PositiveModulo(f2+0.5, 1.0)},
		})
	default:
		helper := newMappingHelper(len(filtered1), len(filtered2))
		for _, dv := range candidates {
			helper.addMapping(filtered1, filtered2, dv.i1, dv.i2)
		}
		return NewDoubleMapper(helper.mapping)
	}
}

func featureRepresentativePoint(f Feature) Point {
	return f.Cubics[0].Anchor0.Midpoint(f.Cubics[len(f.Cubics)-1].Anchor1)
}

func featureDistSquared(f1, f2 Feature) float32 {
	const noMatch = float32(3.402823466e+38)
	if f1.IsCorner() && f2.IsCorner() && f1.Convex != f2.Convex {
		// Force corners to match only others of the same concavity.
		return noMatch
	}
	return featureRepresentativePoint(f1).Sub(featureRepresentativePoint(f2)).LengthSquared()
}

// mappingHelper accumulates a sorted-by-source-progress list of matched
// progress pairs, rejecting pairs that would reuse a feature, crowd an
// existing mapping, or cross it.
type mappingHelper struct {
	mapping []ProgressPair
	usedF1  []bool
	usedF2  []bool
}

func newMappingHelper(n1, n2 int) *mappingHelper {
	return &mappingHelper{usedF1: make([]bool, n1), usedF2: make([]bool, n2)}
}

func (h *mappingHelper) addMapping(features1, features2 []ProgressableFeature, i1, i2 int) {
	if h.usedF1[i1] || h.usedF2[i2] {
		return
	}

	f1Progress := features1[i1].Progress
	f2Progress := features2[i2].Progress

	insertionIndex := sort.Search(len(h.mapping), func(i int) bool {
		return h.mapping[i].Source >= f1Progress
	})
	if insertionIndex < len(h.mapping) && h.mapping[insertionIndex].Source == f1Progress {
		// There can't be two features with the same progress; skip rather
		// than panic, since that can legitimately arise from float rounding.
		return
	}

	n := len(h.mapping)
	if n >= 1 {
		before := h.mapping[(insertionIndex+n-1)%n]
		after := h.mapping[insertionIndex%n]

		if CircularDistance(f1Progress, before.Source) < DistanceEpsilon ||
			CircularDistance(f1Progress, after.Source) < DistanceEpsilon ||
			CircularDistance(f2Progress, before.Target) < DistanceEpsilon ||
			CircularDistance(f2Progress, after.Target) < DistanceEpsilon {
			return
		}

		if n > 1 && !ProgressInRange(f2Progress, before.Target, after.Target) {
			return
		}
	}

	h.mapping = append(h.mapping, ProgressPair{})
	copy(h.mapping[insertionIndex+1:], h.mapping[insertionIndex:])
	h.mapping[insertionIndex] = ProgressPair{Source: f1Progress, Target: f2Progress}
	h.usedF1[i1] = true
	h.usedF2[i2] = true
}
