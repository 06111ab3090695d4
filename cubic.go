package cu2qu

import (
	"iter"
)

// CubicBez is a cubic Bézier curve. P0 and P3 are the on-curve end points,
// P1 and P2 the control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t, computed by repeated linear
// interpolation.
func (c CubicBez) Eval(t float64) Point {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p0, p1, p2, p3 := Vec2(c.P0), Vec2(c.P1), Vec2(c.P2), Vec2(c.P3)
	mid := Point(p0.Add(p1.Add(p2).Mul(3)).Add(p3).Mul(0.125))
	deriv3 := p3.Add(p2).Sub(p1).Sub(p0).Mul(0.125)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			mid.Translate(deriv3.Negate()),
			mid,
		},
		CubicBez{
			mid,
			mid.Translate(deriv3),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Transform applies an affine transformation to all four points.
func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// Points returns the four points in order.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// splitIntoN splits the cubic into n pieces of equal parameter length.
func (c CubicBez) splitIntoN(n int) iter.Seq[CubicBez] {
	// Some values of n are special-cased so that we produce the same
	// results as cu2qu.

	switch n {
	case 1:
		return func(yield func(CubicBez) bool) { yield(c) }
	case 2:
		return func(yield func(CubicBez) bool) {
			l, r := c.Subdivide()
			_ = yield(l) && yield(r)
		}
	case 3:
		return func(yield func(CubicBez) bool) {
			l, m, r := c.subdivide3()
			_ = yield(l) && yield(m) && yield(r)
		}
	case 4:
		return func(yield func(CubicBez) bool) {
			l, r := c.Subdivide()
			ll, lr := l.Subdivide()
			rl, rr := r.Subdivide()
			_ = yield(ll) && yield(lr) && yield(rl) && yield(rr)
		}
	case 6:
		return func(yield func(CubicBez) bool) {
			l, r := c.Subdivide()
			l1, l2, l3 := l.subdivide3()
			r1, r2, r3 := r.subdivide3()
			_ = yield(l1) && yield(l2) && yield(l3) &&
				yield(r1) && yield(r2) && yield(r3)
		}
	}

	return func(yield func(CubicBez) bool) {
		a, b, c, d := c.parameters()
		dt := 1.0 / float64(n)
		delta2 := dt * dt
		delta3 := dt * delta2
		for i := range n {
			t1 := float64(i) * dt
			t1_2 := t1 * t1
			// The polynomial form of the sub-segment, evaluated without
			// reassociating products so that rounding matches cu2qu.
			a1 := a.Mul(delta3)
			b1 := a.Mul(3.0).Mul(t1).Add(b).Mul(delta2)
			c1 := b.Mul(2.0).Mul(t1).Add(c).Add(a.Mul(3.0).Mul(t1_2)).Mul(dt)
			d1 := a.Mul(t1).Mul(t1_2).Add(b.Mul(t1_2)).Add(c.Mul(t1)).Add(d)

			p0 := Point(d1)
			p1 := Point(c1.Div(3)).Translate(d1)
			p2 := Point(b1.Add(c1).Div(3)).Translate(Vec2(p1))
			p3 := Point(a1.Add(d1).Add(c1).Add(b1))
			if !yield(CubicBez{p0, p1, p2, p3}) {
				break
			}
		}
	}
}

// parameters returns the power basis coefficients a t³ + b t² + c t + d.
func (c CubicBez) parameters() (Vec2, Vec2, Vec2, Vec2) {
	cc := c.P1.Sub(c.P0).Mul(3.0)
	b := c.P2.Sub(c.P1).Mul(3.0).Sub(cc)
	d := Vec2(c.P0)
	a := Vec2(c.P3).Sub(d).Sub(cc).Sub(b)
	return a, b, cc, d
}

func (c CubicBez) subdivide3() (CubicBez, CubicBez, CubicBez) {
	p0, p1, p2, p3 :=
		Vec2(c.P0),
		Vec2(c.P1),
		Vec2(c.P2),
		Vec2(c.P3)

	// Multiply by the reciprocal of 27 instead of dividing, to get the same
	// rounding as cu2qu.
	mid1 := Point(p0.Mul(8).Add(p1.Mul(12)).Add(p2.Mul(6)).Add(p3).Mul(1.0 / 27.0))
	deriv1 := p3.Add(p2.Mul(3)).Sub(p0.Mul(4)).Mul(1.0 / 27.0)
	mid2 := Point(p0.Add(p1.Mul(6)).Add(p2.Mul(12)).Add(p3.Mul(8)).Mul(1.0 / 27.0))
	deriv2 := p3.Mul(4).Sub(p1.Mul(3)).Sub(p0).Mul(1.0 / 27.0)

	left := CubicBez{
		c.P0,
		Point(p0.Mul(2).Add(p1).Div(3)),
		mid1.Translate(deriv1.Negate()),
		mid1,
	}
	mid := CubicBez{mid1, mid1.Translate(deriv1), mid2.Translate(deriv2.Negate()), mid2}
	right := CubicBez{
		mid2,
		mid2.Translate(deriv2),
		Point(p2.Add(p3.Mul(2)).Div(3)),
		c.P3,
	}
	return left, mid, right
}

// approxQuadControl returns the off-curve point of a quadratic approximating
// c. Both tangents are extended by half their length, and the result is
// interpolated between the two extended points at t.
func (c CubicBez) approxQuadControl(t float64) Point {
	p1 := c.P0.Translate(c.P1.Sub(c.P0).Mul(1.5))
	p2 := c.P3.Translate(c.P2.Sub(c.P3).Mul(1.5))
	return p1.Translate(p2.Sub(p1).Mul(t))
}

// SignedArea returns the curve's contribution to the signed area of a
// closed path, by Green's theorem.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}
