package rasterpen

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/vector"
	"honnef.co/go/cu2qu"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func square(pen cu2qu.Pen, x0, y0, x1, y1 float64, closed bool) error {
	for _, err := range []error{
		pen.MoveTo(cu2qu.Pt(x0, y0)),
		pen.LineTo(cu2qu.Pt(x1, y0)),
		pen.LineTo(cu2qu.Pt(x1, y1)),
		pen.LineTo(cu2qu.Pt(x0, y1)),
	} {
		if err != nil {
			return err
		}
	}
	if closed {
		return pen.ClosePath()
	}
	return pen.EndPath()
}

func TestFontTransform(t *testing.T) {
	aff := FontTransform(1000, 100, cu2qu.Pt(10, 90))
	diff(t, cu2qu.Pt(10, 90), cu2qu.Pt(0, 0).Transform(aff))
	diff(t, cu2qu.Pt(110, -10), cu2qu.Pt(1000, 1000).Transform(aff))
	diff(t, cu2qu.Pt(60, 90), cu2qu.Pt(500, 0).Transform(aff))
}

func TestVectorPen(t *testing.T) {
	for _, closed := range []bool{true, false} {
		const size = 20
		z := vector.NewRasterizer(size, size)
		pen := NewVectorPen(z, cu2qu.Identity)
		if err := square(pen, 5, 5, 15, 15, closed); err != nil {
			t.Fatal(err)
		}
		dst := image.NewAlpha(image.Rect(0, 0, size, size))
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

		if a := dst.AlphaAt(10, 10).A; a != 0xff {
			t.Errorf("closed=%t: got alpha %d inside, want 255", closed, a)
		}
		if a := dst.AlphaAt(2, 2).A; a != 0 {
			t.Errorf("closed=%t: got alpha %d outside, want 0", closed, a)
		}
	}
}

// The same glyph drawn with cubics and after conversion covers the same
// pixels away from the outline and about the same area overall. Pixels on
// the outline are left alone: the rasterizer flattens cubics and quadratics
// differently, which moves edges by a good part of a pixel.
func TestVectorPenConverted(t *testing.T) {
	const size = 64
	var p cu2qu.BezPath
	p.MoveTo(cu2qu.Pt(100, 0))
	p.CubicTo(cu2qu.Pt(100, 600), cu2qu.Pt(900, 600), cu2qu.Pt(900, 0))
	p.ClosePath()
	aff := FontTransform(1000, size, cu2qu.Pt(0, size-8))

	render := func(draw func(pen cu2qu.Pen) error) *image.Alpha {
		z := vector.NewRasterizer(size, size)
		if err := draw(NewVectorPen(z, aff)); err != nil {
			t.Fatal(err)
		}
		dst := image.NewAlpha(image.Rect(0, 0, size, size))
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
		return dst
	}
	orig := render(p.Draw)
	conv := render(func(pen cu2qu.Pen) error {
		return p.Draw(cu2qu.NewPen(pen, cu2qu.Options{MaxErr: 1}))
	})

	// settled reports whether the 3x3 block around (x, y) is uniformly
	// empty or uniformly full in orig.
	settled := func(x, y int) bool {
		a := orig.AlphaAt(x, y).A
		if a != 0 && a != 0xff {
			return false
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if orig.AlphaAt(x+dx, y+dy).A != a {
					return false
				}
			}
		}
		return true
	}

	var inside, sumOrig, sumConv int
	for y := range size {
		for x := range size {
			a, b := int(orig.AlphaAt(x, y).A), int(conv.AlphaAt(x, y).A)
			sumOrig += a
			sumConv += b
			if !settled(x, y) {
				continue
			}
			if a == 0xff {
				inside++
			}
			if d := a - b; d < -1 || d > 1 {
				t.Errorf("(%d, %d): coverage %d before and %d after conversion", x, y, a, b)
			}
		}
	}
	if inside == 0 {
		t.Fatal("nothing was drawn")
	}
	// The glyph is about 1180 square pixels.
	if d := sumOrig - sumConv; d < -sumOrig/50 || d > sumOrig/50 {
		t.Errorf("total coverage %d before and %d after conversion", sumOrig, sumConv)
	}
}

func TestAdderPen(t *testing.T) {
	var got rasterx.Path
	pen := NewAdderPen(&got, cu2qu.Scale(2, 2))
	if err := pen.MoveTo(cu2qu.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := pen.QCurveTo(cu2qu.Pt(1, 1), cu2qu.Pt(3, 1), cu2qu.Pt(4, 0)); err != nil {
		t.Fatal(err)
	}
	if err := pen.CurveTo(cu2qu.Pt(4, -1), cu2qu.Pt(1, -1), cu2qu.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := pen.ClosePath(); err != nil {
		t.Fatal(err)
	}
	if err := square(pen, 0, 0, 1, 1, false); err != nil {
		t.Fatal(err)
	}

	var want rasterx.Path
	want.Start(rasterx.ToFixedP(0, 0))
	want.QuadBezier(rasterx.ToFixedP(2, 2), rasterx.ToFixedP(4, 2))
	want.QuadBezier(rasterx.ToFixedP(6, 2), rasterx.ToFixedP(8, 0))
	want.CubeBezier(rasterx.ToFixedP(8, -2), rasterx.ToFixedP(2, -2), rasterx.ToFixedP(0, 0))
	want.Stop(true)
	want.Start(rasterx.ToFixedP(0, 0))
	want.Line(rasterx.ToFixedP(2, 0))
	want.Line(rasterx.ToFixedP(2, 2))
	want.Line(rasterx.ToFixedP(0, 2))
	diff(t, want, got)
	diff(t, "M0.000,0.000 L2.000,0.000 L2.000,2.000 L0.000,2.000", got[len(got)-12:].String())
}

func TestAdderPenFiller(t *testing.T) {
	const size = 20
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	filler := rasterx.NewFiller(size, size, scanner)
	filler.SetColor(color.Black)
	if err := square(NewAdderPen(filler, cu2qu.Identity), 4, 4, 16, 16, true); err != nil {
		t.Fatal(err)
	}
	filler.Draw()

	if _, _, _, a := dst.At(10, 10).RGBA(); a != 0xffff {
		t.Errorf("got alpha %#x inside, want 0xffff", a)
	}
	if _, _, _, a := dst.At(1, 1).RGBA(); a != 0 {
		t.Errorf("got alpha %#x outside, want 0", a)
	}
}
