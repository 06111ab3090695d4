package cu2qu

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func bernstein(c CubicBez, t float64) Point {
	mt := 1 - t
	a, b, cc, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Pt(
		a*c.P0.X+b*c.P1.X+cc*c.P2.X+d*c.P3.X,
		a*c.P0.Y+b*c.P1.Y+cc*c.P2.Y+d*c.P3.Y,
	)
}

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 40), Pt(60, -20), Pt(100, 10)}
	for i := range 11 {
		tt := float64(i) / 10
		diff(t, bernstein(c, tt), c.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(550, 258), Pt(1044, 482), Pt(2029, 1841), Pt(1934, 1554)}
	l, r := c.Subdivide()
	diff(t, c.P0, l.P0)
	diff(t, c.P3, r.P3)
	diff(t, l.P3, r.P0)
	diff(t, c.Eval(0.5), l.P3, pointComparer)
	for i := range 11 {
		tt := float64(i) / 10
		diff(t, c.Eval(tt/2), l.Eval(tt), cmpopts.EquateApprox(0, 1e-9))
		diff(t, c.Eval(0.5+tt/2), r.Eval(tt), cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestCubicBezSplitIntoN(t *testing.T) {
	c := CubicBez{Pt(859, 384), Pt(1998, 116), Pt(1596, 1772), Pt(8, 1824)}
	for n := 1; n <= 10; n++ {
		var segs []CubicBez
		for seg := range c.splitIntoN(n) {
			segs = append(segs, seg)
		}
		if len(segs) != n {
			t.Fatalf("n=%d: got %d segments", n, len(segs))
		}
		for i, seg := range segs {
			t0, t1 := float64(i)/float64(n), float64(i+1)/float64(n)
			diff(t, c.Eval(t0), seg.P0, cmpopts.EquateApprox(0, 1e-9))
			diff(t, c.Eval(t1), seg.P3, cmpopts.EquateApprox(0, 1e-9))
			diff(t, c.Eval((t0+t1)/2), seg.Eval(0.5), cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestCubicBezSignedAreaLinear(t *testing.T) {
	// y = 1 - x
	c := CubicBez{
		Pt(1.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0/3.0, 2.0/3.0),
		Pt(0.0, 1.0),
	}
	const epsilon = 1e-12

	diff(t, 0.5, c.SignedArea())
	diff(t, 0.5, c.Transform(Rotate(0.5)).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(0.0, 1.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(1.0, 0.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
}

func TestCubicBezSignedArea(t *testing.T) {
	// y = 1 - x^3
	c := CubicBez{
		Pt(1.0, 0.0),
		Pt(2.0/3.0, 1.0),
		Pt(1.0/3.0, 1.0),
		Pt(0.0, 1.0),
	}
	const epsilon = 1e-12
	diff(t, 0.75, c.SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 0.75, c.Transform(Rotate(0.5)).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.25, c.Transform(Translate(Vec(0.0, 1.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	c := q.Raise()
	for i := range 11 {
		tt := float64(i) / 10
		diff(t, q.Eval(tt), c.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
	diff(t, q.SignedArea(), c.SignedArea(), cmpopts.EquateApprox(0, 1e-12))
}

func TestInfiniteLineCrossingPoint(t *testing.T) {
	tests := []struct {
		a, b InfiniteLine
		want Point
		ok   bool
	}{
		{InfiniteLine{Pt(0, 0), Pt(1, 1)}, InfiniteLine{Pt(0, 2), Pt(1, 1)}, Pt(1, 1), true},
		{InfiniteLine{Pt(0, 0), Pt(1, 0)}, InfiniteLine{Pt(5, -3), Pt(5, 3)}, Pt(5, 0), true},
		// parallel
		{InfiniteLine{Pt(0, 0), Pt(1, 1)}, InfiniteLine{Pt(0, 1), Pt(1, 2)}, Point{}, false},
		// collinear
		{InfiniteLine{Pt(0, 0), Pt(1, 1)}, InfiniteLine{Pt(2, 2), Pt(3, 3)}, Point{}, false},
		// zero length
		{InfiniteLine{Pt(1, 1), Pt(1, 1)}, InfiniteLine{Pt(0, 2), Pt(1, 1)}, Point{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.a.CrossingPoint(tt.b)
		if ok != tt.ok {
			t.Errorf("%v × %v: got ok=%t, want %t", tt.a, tt.b, ok, tt.ok)
			continue
		}
		if ok {
			diff(t, tt.want, got, pointComparer)
		}
		if math.IsNaN(got.X) || math.IsNaN(got.Y) {
			t.Errorf("%v × %v: got NaN", tt.a, tt.b)
		}
	}
}

func TestAffine(t *testing.T) {
	p := Pt(3, 4)
	diff(t, p, p.Transform(Identity))
	diff(t, Pt(6, -4), p.Transform(Scale(2, -1)))
	diff(t, Pt(-4, 3), p.Transform(Rotate(math.Pi/2)), pointComparer)

	a := Translate(Vec(10, 20))
	b := Scale(2, 3)
	diff(t, p.Transform(b).Transform(a), p.Transform(a.Mul(b)))
	diff(t, "(2, 0, 0, 3, 0, 0)", b.String())
}
