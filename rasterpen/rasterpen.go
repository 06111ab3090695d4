// Package rasterpen draws cu2qu pen output with the rasterizers of
// golang.org/x/image/vector and github.com/srwiley/rasterx, for previews
// and for comparing outlines before and after conversion.
package rasterpen

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"honnef.co/go/cu2qu"
)

// FontTransform maps font units, with the Y axis pointing up, to pixels of
// an image, with the Y axis pointing down. ppem is the size of an em in
// pixels and origin is the pixel position of the glyph origin.
func FontTransform(unitsPerEm, ppem float64, origin cu2qu.Point) cu2qu.Affine {
	s := ppem / unitsPerEm
	return cu2qu.Translate(cu2qu.Vec(origin.X, origin.Y)).Mul(cu2qu.Scale(s, -s))
}

// bridge turns pen calls into path elements, which it transforms and
// passes to emit. end is called for contours ended with EndPath.
type bridge struct {
	path cu2qu.BezPathPen
	aff  cu2qu.Affine
	emit func(el cu2qu.PathElement)
	end  func()
}

func (b *bridge) flush(err error) error {
	if err != nil {
		return err
	}
	for _, el := range b.path.Path {
		b.emit(el.Transform(b.aff))
	}
	b.path.Path = b.path.Path[:0]
	return nil
}

func (b *bridge) MoveTo(pt cu2qu.Point) error       { return b.flush(b.path.MoveTo(pt)) }
func (b *bridge) LineTo(pt cu2qu.Point) error       { return b.flush(b.path.LineTo(pt)) }
func (b *bridge) CurveTo(pts ...cu2qu.Point) error  { return b.flush(b.path.CurveTo(pts...)) }
func (b *bridge) QCurveTo(pts ...cu2qu.Point) error { return b.flush(b.path.QCurveTo(pts...)) }
func (b *bridge) ClosePath() error                  { return b.flush(b.path.ClosePath()) }

func (b *bridge) EndPath() error {
	b.end()
	return nil
}

func (b *bridge) AddComponent(string, cu2qu.Affine) error { return nil }

// VectorPen is a [cu2qu.Pen] that adds outlines to a
// [vector.Rasterizer]. Open contours are closed, as needed for filling.
// Components are ignored.
type VectorPen struct {
	bridge
	Rasterizer *vector.Rasterizer
}

var _ cu2qu.Pen = (*VectorPen)(nil)

// NewVectorPen returns a pen drawing into z, transforming every point by
// aff first.
func NewVectorPen(z *vector.Rasterizer, aff cu2qu.Affine) *VectorPen {
	pen := &VectorPen{Rasterizer: z}
	pen.bridge = bridge{aff: aff, emit: pen.element, end: z.ClosePath}
	return pen
}

func (pen *VectorPen) element(el cu2qu.PathElement) {
	z := pen.Rasterizer
	switch el.Kind {
	case cu2qu.MoveToKind:
		z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
	case cu2qu.LineToKind:
		z.LineTo(float32(el.P0.X), float32(el.P0.Y))
	case cu2qu.QuadToKind:
		z.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
	case cu2qu.CubicToKind:
		z.CubeTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y), float32(el.P2.X), float32(el.P2.Y))
	case cu2qu.ClosePathKind:
		z.ClosePath()
	}
}

// AdderPen is a [cu2qu.Pen] that feeds outlines to a [rasterx.Adder], such
// as a [rasterx.Path], [rasterx.Filler] or [rasterx.Stroker]. Components
// are ignored.
type AdderPen struct {
	bridge
	Adder rasterx.Adder
}

var _ cu2qu.Pen = (*AdderPen)(nil)

// NewAdderPen returns a pen drawing into a, transforming every point by aff
// first.
func NewAdderPen(a rasterx.Adder, aff cu2qu.Affine) *AdderPen {
	pen := &AdderPen{Adder: a}
	pen.bridge = bridge{aff: aff, emit: pen.element, end: func() { a.Stop(false) }}
	return pen
}

func fixedP(p cu2qu.Point) fixed.Point26_6 { return rasterx.ToFixedP(p.X, p.Y) }

func (pen *AdderPen) element(el cu2qu.PathElement) {
	a := pen.Adder
	switch el.Kind {
	case cu2qu.MoveToKind:
		a.Start(fixedP(el.P0))
	case cu2qu.LineToKind:
		a.Line(fixedP(el.P0))
	case cu2qu.QuadToKind:
		a.QuadBezier(fixedP(el.P0), fixedP(el.P1))
	case cu2qu.CubicToKind:
		a.CubeBezier(fixedP(el.P0), fixedP(el.P1), fixedP(el.P2))
	case cu2qu.ClosePathKind:
		a.Stop(true)
	}
}
