package shapes

import "github.com/chewxy/math32"

// PolygonOption configures one of this file's named polygon constructors.
// Follows the teacher's functional-options pattern (ContextOption in
// options.go).
type PolygonOption func(*polygonOptions)

type polygonOptions struct {
	center            Point
	rounding          CornerRounding
	perVertexRounding []CornerRounding
	innerRounding     *CornerRounding
	smoothing         float32
	vertexSpacing     float32
	startLocation     float32
}

func defaultPolygonOptions() polygonOptions {
	return polygonOptions{
		center:        Point{X: 0, Y: 0},
		vertexSpacing: 0.5,
	}
}

// WithCenter overrides the polygon's center, which otherwise defaults to
// the origin (or, for FromPoints, (0.5, 0.5)).
func WithCenter(center Point) PolygonOption {
	return func(o *polygonOptions) { o.center = center }
}

// WithRounding sets the rounding applied to every vertex that isn't
// overridden by WithPerVertexRounding.
func WithRounding(r CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.rounding = r }
}

// WithPerVertexRounding overrides rounding on a per-vertex basis. Its
// length must match the polygon's vertex count.
func WithPerVertexRounding(rs []CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.perVertexRounding = rs }
}

// WithInnerRounding sets the rounding applied to the inner vertices of a
// Star or PillStar.
func WithInnerRounding(r CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.innerRounding = &r }
}

// WithSmoothing sets a Pill's corner smoothing factor.
func WithSmoothing(s float32) PolygonOption {
	return func(o *polygonOptions) { o.smoothing = s }
}

// WithVertexSpacing biases a PillStar's endcap vertex spacing toward its
// inner (0) or outer (1) radius; 0.5 (the default) averages the two.
func WithVertexSpacing(s float32) PolygonOption {
	return func(o *polygonOptions) { o.vertexSpacing = s }
}

// WithStartLocation rotates where a PillStar's first vertex falls along
// its perimeter, as a fraction of the perimeter in [0, 1).
func WithStartLocation(t float32) PolygonOption {
	return func(o *polygonOptions) { o.startLocation = t }
}

// Circle returns a regular polygon approximating a circle of the given
// radius using the given number of vertices, each rounded enough that the
// outline is indistinguishable from a true circle.
func Circle(vertices int, radius float32, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	for _, opt := range opts {
		opt(&o)
	}

	theta := math32.Pi / float32(vertices)
	polygonRadius := radius / math32.Cos(theta)

	return FromVerticesCountAt(vertices, polygonRadius, o.center, NewCornerRounding(radius), nil)
}

// Rectangle returns a rectangle of the given width and height, optionally
// rounded via WithRounding/WithPerVertexRounding.
func Rectangle(width, height float32, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	for _, opt := range opts {
		opt(&o)
	}

	halfW, halfH := width/2.0, height/2.0
	vertices := []Point{
		{X: o.center.X + halfW, Y: o.center.Y + halfH},
		{X: o.center.X - halfW, Y: o.center.Y + halfH},
		{X: o.center.X - halfW, Y: o.center.Y - halfH},
		{X: o.center.X + halfW, Y: o.center.Y - halfH},
	}

	return FromVertices(flattenPoints(vertices), o.rounding, o.perVertexRounding, o.center)
}

// Star returns a star polygon alternating verticesPerRadius outer vertices
// at radius with verticesPerRadius inner vertices at innerRadius.
func Star(verticesPerRadius int, radius, innerRadius float32, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := starVertices(verticesPerRadius, radius, innerRadius, o.center)
	perVertex := starPerVertexRounding(verticesPerRadius, o.rounding, o.innerRounding, o.perVertexRounding)

	return FromVertices(flattenPoints(vertices), o.rounding, perVertex, o.center)
}

func starPerVertexRounding(verticesPerRadius int, rounding CornerRounding, innerRounding *CornerRounding, explicit []CornerRounding) []CornerRounding {
	if len(explicit) != 0 {
		return explicit
	}
	if innerRounding == nil {
		return nil
	}
	result := make([]CornerRounding, 0, verticesPerRadius*2)
	for i := 0; i < verticesPerRadius; i++ {
		result = append(result, rounding, *innerRounding)
	}
	return result
}

func starVertices(verticesPerRadius int, radius, innerRadius float32, center Point) []Point {
	result := make([]Point, verticesPerRadius*2)
	for i := range result {
		r := radius
		if i%2 != 0 {
			r = innerRadius
		}
		result[i] = center.Add(RadialToCartesian(r, math32.Pi/float32(verticesPerRadius)*float32(i)))
	}
	return result
}

// Pill returns a stadium shape (a rectangle with semicircular ends) of the
// given width and height, whose corners are rounded with a radius of half
// the shorter side and the smoothing factor set via WithSmoothing.
func Pill(width, height float32, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	for _, opt := range opts {
		opt(&o)
	}

	halfW, halfH := width/2.0, height/2.0
	vertices := []Point{
		{X: o.center.X + halfW, Y: o.center.Y + halfH},
		{X: o.center.X - halfW, Y: o.center.Y + halfH},
		{X: o.center.X - halfW, Y: o.center.Y - halfH},
		{X: o.center.X + halfW, Y: o.center.Y - halfH},
	}
	rounding := SmoothedCornerRounding(minFloat32(halfW, halfH), o.smoothing)

	return FromVertices(flattenPoints(vertices), rounding, nil, o.center)
}

// PillStar returns a star polygon whose outer vertices follow a pill
// (stadium) outline instead of a circle.
func PillStar(verticesPerRadius int, width, height, innerRadiusRatio float32, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := pillStarVertices(verticesPerRadius, width, height, innerRadiusRatio, o.vertexSpacing, o.startLocation, o.center)
	perVertex := starPerVertexRounding(verticesPerRadius, o.rounding, o.innerRounding, o.perVertexRounding)

	return FromVertices(flattenPoints(vertices), o.rounding, perVertex, o.center)
}

// pillStarVertices walks the perimeter of the underlying pill outline and
// places vertices at evenly spaced arc-length intervals, alternating
// between the outer radius and inner_radius_ratio * outer radius.
//
// Grounded in original_source's polygon_builder.rs
// pill_star_vertices_from_num_verts.
func pillStarVertices(verticesPerRadius int, width, height, innerRadiusRatio, vertexSpacing, startLocation float32, center Point) []Point {
	endcapRadius := minFloat32(width, height)
	vSegLen := maxFloat32(height-width, 0)
	hSegLen := maxFloat32(width-height, 0)
	vSegHalf := vSegLen / 2.0
	hSegHalf := hSegLen / 2.0

	circlePerimeter := math32.Pi * 2.0 * endcapRadius * (innerRadiusRatio*(1.0-vertexSpacing) + vertexSpacing)
	perimeter := 2.0*hSegLen + 2.0*vSegLen + circlePerimeter

	var sections [11]float32
	sections[1] = vSegLen / 2.0
	sections[2] = sections[1] + circlePerimeter/4.0
	sections[3] = sections[2] + hSegLen
	sections[4] = sections[3] + circlePerimeter/4.0
	sections[5] = sections[4] + vSegLen
	sections[6] = sections[5] + circlePerimeter/4.0
	sections[7] = sections[6] + hSegLen
	sections[8] = sections[7] + circlePerimeter/4.0
	sections[9] = sections[8] + vSegLen/2.0
	sections[10] = perimeter

	tPerVertex := perimeter / float32(2*verticesPerRadius)

	rectBottomRight := Point{X: hSegHalf, Y: vSegHalf}
	rectBottomLeft := Point{X: -hSegHalf, Y: vSegHalf}
	rectTopLeft := Point{X: -hSegHalf, Y: -vSegHalf}
	rectTopRight := Point{X: hSegHalf, Y: -vSegHalf}

	inner := false
	currSecIndex := 0
	secStart := float32(0)
	secEnd := sections[1]
	t := startLocation * perimeter

	result := make([]Point, 0, verticesPerRadius*2)

	for i := 0; i < verticesPerRadius*2; i++ {
		boundedT := math32.Mod(t, perimeter)
		if boundedT < 0 {
			boundedT += perimeter
		}

		if boundedT < secStart {
			currSecIndex = 0
		}
		for boundedT >= sections[(currSecIndex+1)%len(sections)] {
			currSecIndex = (currSecIndex + 1) % len(sections)
			secStart = sections[currSecIndex]
			secEnd = sections[(currSecIndex+1)%len(sections)]
		}

		tInSection := boundedT - secStart
		tProportion := tInSection / (secEnd - secStart)

		currRadius := endcapRadius
		if inner {
			currRadius = endcapRadius * innerRadiusRatio
		}

		var vertex Point
		switch currSecIndex {
		case 0:
			vertex = Point{X: currRadius, Y: tProportion * vSegHalf}
		case 1:
			vertex = rectBottomRight.Add(RadialToCartesian(currRadius, tProportion*math32.Pi/2.0))
		case 2:
			vertex = Point{X: hSegHalf - tProportion*hSegLen, Y: currRadius}
		case 3:
			vertex = rectBottomLeft.Add(RadialToCartesian(currRadius, math32.Pi/2.0+tProportion*math32.Pi/2.0))
		case 4:
			vertex = Point{X: -currRadius, Y: vSegHalf - tProportion*vSegLen}
		case 5:
			vertex = rectTopLeft.Add(RadialToCartesian(currRadius, math32.Pi+tProportion*math32.Pi/2.0))
		case 6:
			vertex = Point{X: -hSegHalf + tProportion*hSegLen, Y: -currRadius}
		case 7:
			vertex = rectTopRight.Add(RadialToCartesian(currRadius, 1.5*math32.Pi+tProportion*math32.Pi/2.0))
		default: // 8
			vertex = Point{X: currRadius, Y: -vSegHalf + tProportion*vSegHalf}
		}

		result = append(result, vertex.Add(center.ToVector()))

		t += tPerVertex
		inner = !inner
	}

	return result
}

// FromVerticesCount returns a regular polygon with the given number of
// vertices and circumradius, centered at the origin.
func FromVerticesCount(vertices int, radius float32, rounding CornerRounding, perVertexRounding []CornerRounding) (RoundedPolygon, error) {
	return FromVerticesCountAt(vertices, radius, Point{}, rounding, perVertexRounding)
}

// FromVerticesCountAt is FromVerticesCount with an explicit center.
func FromVerticesCountAt(vertices int, radius float32, center Point, rounding CornerRounding, perVertexRounding []CornerRounding) (RoundedPolygon, error) {
	return FromVertices(flattenPoints(regularVertices(vertices, radius, center)), rounding, perVertexRounding, center)
}

func regularVertices(count int, radius float32, center Point) []Point {
	result := make([]Point, count)
	for i := 0; i < count; i++ {
		result[i] = center.Add(RadialToCartesian(radius, math32.Pi/float32(count)*2.0*float32(i)))
	}
	return result
}

func flattenPoints(points []Point) []float32 {
	result := make([]float32, 0, len(points)*2)
	for _, p := range points {
		result = append(result, p.X, p.Y)
	}
	return result
}

// RoundedPoint pairs a vertex position with the rounding to apply there,
// for use with FromPoints.
type RoundedPoint struct {
	Offset   Point
	Rounding CornerRounding
}

// FromPoints builds a custom polygon from an explicit list of rounded
// points, optionally repeating the pattern repeats times around the
// center (e.g. to build symmetric flower/gear shapes from one petal).
//
// When mirroring is true, every other repetition is mirrored rather than
// rotated, which keeps rounding consistent for shapes whose repeating unit
// isn't itself symmetric.
//
// Supplemented from original_source's custom_polygon /
// RoundedPolygon::from_points, dropped from the distilled spec but a cheap,
// direct extension of the assembly pipeline.
func FromPoints(points []RoundedPoint, repeats int, mirroring bool, opts ...PolygonOption) (RoundedPolygon, error) {
	o := defaultPolygonOptions()
	o.center = Point{X: 0.5, Y: 0.5}
	for _, opt := range opts {
		opt(&o)
	}

	actual := expandCustomPolygonPoints(points, repeats, mirroring, o.center)

	roundings := make([]CornerRounding, len(actual))
	offsets := make([]Point, len(actual))
	for i, p := range actual {
		offsets[i] = p.Offset
		roundings[i] = p.Rounding
	}

	return FromVertices(flattenPoints(offsets), UNROUNDED, roundings, o.center)
}

func expandCustomPolygonPoints(points []RoundedPoint, repeats int, mirroring bool, center Point) []RoundedPoint {
	if !mirroring {
		size := len(points)
		result := make([]RoundedPoint, 0, size*repeats)
		for it := 0; it < size*repeats; it++ {
			angle := float32(it/size) * 360.0 / float32(repeats)
			p := points[it%size].Offset.RotatedDegrees(angle, center)
			result = append(result, RoundedPoint{Offset: p, Rounding: points[it%size].Rounding})
		}
		return result
	}

	n := len(points)
	angles := make([]float32, n)
	distances := make([]float32, n)
	for i, p := range points {
		d := p.Offset.Sub(center)
		angles[i] = math32.Atan2(d.Y, d.X) * 180.0 / math32.Pi
		distances[i] = d.Length()
	}

	actualRepeats := repeats * 2
	sectionAngle := 360.0 / float32(actualRepeats)

	var result []RoundedPoint
	for iteration := 0; iteration < actualRepeats; iteration++ {
		for index := 0; index < n; index++ {
			i := index
			if iteration%2 != 0 {
				i = n - index - 1
			}
			if i > 0 || iteration%2 == 0 {
				var baseAngle float32
				if iteration%2 == 0 {
					baseAngle = angles[i]
				} else {
					baseAngle = 2*angles[0] + sectionAngle - angles[i]
				}
				angle := (sectionAngle*float32(iteration) + baseAngle) * math32.Pi / 180.0

				sin, cos := math32.Sincos(angle)
				finalPoint := Point{X: cos * distances[i], Y: sin * distances[i]}.Add(center.ToVector())

				result = append(result, RoundedPoint{Offset: finalPoint, Rounding: points[i].Rounding})
			}
		}
	}
	return result
}
