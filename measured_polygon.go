package shapes

// MeasuredCubic pairs a Cubic with the span of the polygon's overall
// outline progress ([0, 1)) that it occupies.
//
// Grounded in original_source's measured_polygon.rs MeasuredCubic.
type MeasuredCubic struct {
	Cubic                                    Cubic
	StartOutlineProgress, EndOutlineProgress float32
	MeasuredSize                             float32
}

func newMeasuredCubic(measurer Measurer, cubic Cubic, start, end float32) MeasuredCubic {
	return MeasuredCubic{
		Cubic:                cubic,
		StartOutlineProgress: start,
		EndOutlineProgress:   end,
		MeasuredSize:         measurer.MeasureCubic(cubic),
	}
}

// cutAtProgress splits this measured cubic at the given overall outline
// progress, returning the two resulting measured cubics.
func (mc MeasuredCubic) cutAtProgress(measurer Measurer, cutOutlineProgress float32) (MeasuredCubic, MeasuredCubic) {
	bounded := clampFloat32(cutOutlineProgress, mc.StartOutlineProgress, mc.EndOutlineProgress)
	outlineProgressSize := mc.EndOutlineProgress - mc.StartOutlineProgress
	progressFromStart := bounded - mc.StartOutlineProgress

	relativeProgress := progressFromStart / outlineProgressSize
	t := measurer.FindCubicCutPoint(mc.Cubic, relativeProgress*mc.MeasuredSize)

	c1, c2 := mc.Cubic.Split(t)

	return newMeasuredCubic(measurer, c1, mc.StartOutlineProgress, bounded),
		newMeasuredCubic(measurer, c2, bounded, mc.EndOutlineProgress)
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ProgressableFeature pairs a Feature with its outline progress (the
// midpoint of the progress span of the feature's central cubic), letting a
// DoubleMapper match corresponding features between two polygons.
type ProgressableFeature struct {
	Progress float32
	Feature  Feature
}

// MeasuredPolygon is a RoundedPolygon whose cubics have each been assigned
// a span of overall outline progress in [0, 1), via a Measurer.
//
// Grounded in original_source's measured_polygon.rs MeasuredPolygon.
type MeasuredPolygon struct {
	measurer Measurer
	Cubics   []MeasuredCubic
	Features []ProgressableFeature
}

// NewMeasuredPolygon builds a MeasuredPolygon from explicit cubics and
// cumulative outline-progress boundaries (one more entry than cubics),
// dropping cubics whose progress span is degenerate.
func NewMeasuredPolygon(measurer Measurer, features []ProgressableFeature, cubics []Cubic, outlineProgress []float32) MeasuredPolygon {
	var measuredCubics []MeasuredCubic
	startOutlineProgress := float32(0)

	for index := range cubics {
		if outlineProgress[index+1]-outlineProgress[index] > DistanceEpsilon {
			measuredCubics = append(measuredCubics, newMeasuredCubic(measurer, cubics[index], startOutlineProgress, outlineProgress[index+1]))
			startOutlineProgress = outlineProgress[index+1]
		}
	}

	if len(measuredCubics) > 0 {
		measuredCubics[len(measuredCubics)-1].EndOutlineProgress = 1.0
	}

	return MeasuredPolygon{measurer: measurer, Cubics: measuredCubics, Features: features}
}

// MeasurePolygon measures every cubic of polygon with measurer, producing a
// MeasuredPolygon whose cubics and corner features carry their outline
// progress.
func MeasurePolygon(measurer Measurer, polygon RoundedPolygon) MeasuredPolygon {
	var cubics []Cubic
	type featureCubicIndex struct {
		feature Feature
		index   int
	}
	var featureToCubic []featureCubicIndex

	for _, feature := range polygon.Features {
		for cubicIndex, c := range feature.Cubics {
			if feature.IsCorner() && cubicIndex == len(feature.Cubics)/2 {
				featureToCubic = append(featureToCubic, featureCubicIndex{feature: feature, index: len(cubics)})
			}
			cubics = append(cubics, c)
		}
	}

	measureResults := make([]float32, 1, len(cubics)+1)
	for _, c := range cubics {
		measureResults = append(measureResults, measureResults[len(measureResults)-1]+measurer.MeasureCubic(c))
	}
	totalMeasure := measureResults[len(measureResults)-1]

	outlineProgress := make([]float32, len(measureResults))
	for i, m := range measureResults {
		outlineProgress[i] = m / totalMeasure
	}

	var features []ProgressableFeature
	for _, fc := range featureToCubic {
		mid := (outlineProgress[fc.index] + outlineProgress[fc.index+1]) / 2.0
		features = append(features, ProgressableFeature{
			Progress: PositiveModulo(mid, 1.0),
			Feature:  fc.feature,
		})
	}

	return NewMeasuredPolygon(measurer, features, cubics, outlineProgress)
}

// CutAndShift rotates the polygon's cubic sequence so that the cut point
// (expressed as overall outline progress in [0, 1)) becomes the new start
// of the outline, splitting whichever cubic straddles it.
func (mp MeasuredPolygon) CutAndShift(cuttingPoint float32) (MeasuredPolygon, error) {
	if cuttingPoint < 0 || cuttingPoint > 1 {
		return MeasuredPolygon{}, ErrProgressOutOfRange
	}
	if cuttingPoint < DistanceEpsilon {
		return mp, nil
	}

	targetIndex := 0
	for i, c := range mp.Cubics {
		if cuttingPoint >= c.StartOutlineProgress && cuttingPoint <= c.EndOutlineProgress {
			targetIndex = i
			break
		}
	}

	b1, b2 := mp.Cubics[targetIndex].cutAtProgress(mp.measurer, cuttingPoint)

	retCubics := make([]Cubic, 0, len(mp.Cubics)+1)
	retCubics = append(retCubics, b2.Cubic)
	for i := 1; i < len(mp.Cubics); i++ {
		retCubics = append(retCubics, mp.Cubics[(i+targetIndex)%len(mp.Cubics)].Cubic)
	}
	retCubics = append(retCubics, b1.Cubic)

	retOutlineProgress := make([]float32, len(mp.Cubics)+2)
	for index := range retOutlineProgress {
		switch {
		case index == 0:
			retOutlineProgress[index] = 0.0
		case index == len(mp.Cubics)+1:
			retOutlineProgress[index] = 1.0
		default:
			cubicIndex := (targetIndex + index - 1) % len(mp.Cubics)
			retOutlineProgress[index] = PositiveModulo(mp.Cubics[cubicIndex].EndOutlineProgress-cuttingPoint, 1.0)
		}
	}

	newFeatures := make([]ProgressableFeature, len(mp.Features))
	for i, f := range mp.Features {
		newFeatures[i] = ProgressableFeature{
			Progress: PositiveModulo(f.Progress-cuttingPoint, 1.0),
			Feature:  f.Feature,
		}
	}

	return NewMeasuredPolygon(mp.measurer, newFeatures, retCubics, retOutlineProgress), nil
}

