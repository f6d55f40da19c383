package chart

// smoothSteps is the number of flattened sub-segments per curve segment.
const smoothSteps = 8

// smoothPath flattens a cubic Bézier through consecutive points. Both
// control points sit at the segment's horizontal midpoint, at the start and
// end heights respectively. Since every control point shares a Y with an
// endpoint, each curve stays within its endpoints' vertical band and so
// inside the plot rect.
func smoothPath(pts []Point, steps int) []Point {
	if len(pts) < 2 || steps < 1 {
		return append([]Point(nil), pts...)
	}

	path := make([]Point, 0, (len(pts)-1)*steps+1)
	path = append(path, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		p0, p3 := pts[i], pts[i+1]
		midX := p0.X + (p3.X-p0.X)/2
		p1 := Point{X: midX, Y: p0.Y}
		p2 := Point{X: midX, Y: p3.Y}
		for s := 1; s <= steps; s++ {
			path = append(path, cubic(p0, p1, p2, p3, float64(s)/float64(steps)))
		}
	}
	return path
}

// cubic evaluates a cubic Bézier at t in [0, 1]. Terms are offsets from
// p0, so viewports near math.MaxFloat64 do not overflow.
func cubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: p0.X + b*(p1.X-p0.X) + c*(p2.X-p0.X) + d*(p3.X-p0.X),
		Y: p0.Y + b*(p1.Y-p0.Y) + c*(p2.Y-p0.Y) + d*(p3.Y-p0.Y),
	}
}
