package cu2qu

// errorSamples is the total number of points at which Deviation compares a
// cubic with its approximation.
const errorSamples = 20

// ApproxSpline approximates c with a quadratic B-spline of n segments that
// starts and ends at c's end points and keeps c's end tangents.
//
// For n == 1 the single off-curve point is the intersection of the two
// tangents; if they are parallel no such quadratic exists and ApproxSpline
// returns false. For n > 1 the cubic is split into n pieces, each of which
// contributes one off-curve point, and the result always exists.
//
// The returned spline has n+2 points. The approximation error is not
// checked; see [CubicBez.Deviation] and [Convert].
func (c CubicBez) ApproxSpline(n int) (QuadBSpline, bool) {
	if n < 1 {
		return nil, false
	}
	if n == 1 {
		x, ok := c.tangentIntersection()
		if !ok {
			return nil, false
		}
		return QuadBSpline{c.P0, x, c.P3}, true
	}

	spline := make(QuadBSpline, 0, n+2)
	spline = append(spline, c.P0)
	var i int
	for seg := range c.splitIntoN(n) {
		spline = append(spline, seg.approxQuadControl(float64(i)/float64(n-1)))
		i++
	}
	spline = append(spline, c.P3)
	return spline, true
}

// tangentIntersection returns the point where the rays P0→P1 and P3→P2
// meet.
func (c CubicBez) tangentIntersection() (Point, bool) {
	// A cubic that collapses into a single control point (all four points
	// equal, or both controls on one end point) is its own intersection.
	if c.P1 == c.P2 && (c.P0 == c.P1 || c.P2 == c.P3) {
		return c.P1, true
	}
	return InfiniteLine{c.P0, c.P1}.CrossingPoint(InfiniteLine{c.P2, c.P3})
}

// Deviation returns the largest distance between c and spline, sampled at
// 20 points spread evenly over the spline's segments, with at least one
// sample per segment. Segment i of the spline is compared with the i-th
// of n equal parameter ranges of c.
func (c CubicBez) Deviation(spline QuadBSpline) float64 {
	n := spline.Segments()
	if n == 0 {
		return 0
	}
	steps := max(errorSamples/n, 1)
	var dist float64
	var i int
	for q := range spline.Quads() {
		for j := range steps {
			t := float64(j) / float64(steps)
			d := c.Eval((t + float64(i)) / float64(n)).Distance(q.Eval(t))
			dist = max(dist, d)
		}
		i++
	}
	return dist
}
