package cu2qu

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval returns the point at parameter t, computed by repeated linear
// interpolation.
func (q QuadBez) Eval(t float64) Point {
	return q.P0.Lerp(q.P1, t).Lerp(q.P1.Lerp(q.P2, t), t)
}

// Raise returns the cubic that traces the same curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Lerp(q.P1, 2.0/3.0),
		q.P2.Lerp(q.P1, 2.0/3.0),
		q.P2,
	}
}

// SignedArea returns the curve's contribution to the signed area of a
// closed path, by Green's theorem.
func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}
