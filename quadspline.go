package cu2qu

import "iter"

// QuadBSpline is a quadratic B-spline of n segments, stored as n+2 points
// [P₀, C₁, ..., Cₙ, Pₙ]. Only the first and last on-curve points are stored;
// the on-curve point between Cᵢ and Cᵢ₊₁ is their midpoint. TrueType glyf
// contours and qCurveTo calls use the same encoding.
type QuadBSpline []Point

// Segments returns the number of quadratic segments in the spline.
func (q QuadBSpline) Segments() int {
	return max(len(q)-2, 0)
}

// Quads returns an iterator over the quadratic Bézier segments of the
// spline, with the implied on-curve points made explicit. Consecutive
// segments share an end point and its tangent.
func (q QuadBSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		n := q.Segments()
		for i := range n {
			start, end := q[i], q[i+2]
			if i > 0 {
				start = q[i].Midpoint(q[i+1])
			}
			if i < n-1 {
				end = q[i+1].Midpoint(q[i+2])
			}
			if !yield(QuadBez{start, q[i+1], end}) {
				return
			}
		}
	}
}
