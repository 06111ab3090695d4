// Package sfntpen draws glyphs parsed by golang.org/x/image/font/sfnt into
// cu2qu pens.
package sfntpen

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/cu2qu"
)

// ErrNoGlyph is returned by [GlyphForRune] for runes the font doesn't map.
var ErrNoGlyph = errors.New("sfntpen: no glyph for rune")

// Glyph is a glyph of a font. It implements [cu2qu.Drawer], drawing the
// outline in font units with the Y axis pointing up, the way the font
// stores it.
//
// A Font may be shared by Glyphs drawn concurrently.
type Glyph struct {
	Font  *sfnt.Font
	Index sfnt.GlyphIndex
}

var _ cu2qu.Drawer = Glyph{}

// GlyphForRune returns the glyph that f maps r to.
func GlyphForRune(f *sfnt.Font, r rune) (Glyph, error) {
	var b sfnt.Buffer
	idx, err := f.GlyphIndex(&b, r)
	if err != nil {
		return Glyph{}, err
	}
	if idx == 0 {
		return Glyph{}, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	return Glyph{Font: f, Index: idx}, nil
}

// Name returns the glyph's name, or its index if the font doesn't name it.
func (g Glyph) Name() string {
	var b sfnt.Buffer
	if name, err := g.Font.GlyphName(&b, g.Index); err == nil && name != "" {
		return name
	}
	return fmt.Sprintf("glyph%05d", g.Index)
}

// Segments loads the glyph's outline in font units. As with all sfnt
// segments, the Y axis points down.
func (g Glyph) Segments(b *sfnt.Buffer) (sfnt.Segments, error) {
	upem := g.Font.UnitsPerEm()
	return g.Font.LoadGlyph(b, g.Index, fixed.I(int(upem)), nil)
}

func (g Glyph) Draw(pen cu2qu.Pen) error {
	var b sfnt.Buffer
	segs, err := g.Segments(&b)
	if err != nil {
		return fmt.Errorf("sfntpen: loading glyph %d: %w", g.Index, err)
	}
	return DrawSegments(pen, segs, cu2qu.Scale(1, -1))
}

// DrawSegments draws sfnt segments into pen, applying aff to every point.
// Every MoveTo starts a new contour and all contours are closed.
func DrawSegments(pen cu2qu.Pen, segs sfnt.Segments, aff cu2qu.Affine) error {
	pt := func(p fixed.Point26_6) cu2qu.Point {
		return cu2qu.Pt(float64(p.X)/64, float64(p.Y)/64).Transform(aff)
	}
	open := false
	for _, seg := range segs {
		var err error
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				if err := pen.ClosePath(); err != nil {
					return err
				}
			}
			open = true
			err = pen.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			err = pen.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			err = pen.QCurveTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			err = pen.CurveTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		default:
			err = fmt.Errorf("sfntpen: unknown segment op %d", seg.Op)
		}
		if err != nil {
			return err
		}
	}
	if open {
		return pen.ClosePath()
	}
	return nil
}

// SegmentsPen is a [cu2qu.Pen] that collects an outline as sfnt segments in
// 26.6 fixed point, so that it can be fed to code consuming sfnt outlines.
// Quadratic splines are split into their quadratic Béziers. Components are
// ignored.
type SegmentsPen struct {
	Segments sfnt.Segments
	// Transform is applied to every point. The zero value is replaced by
	// the identity.
	Transform cu2qu.Affine
	path      cu2qu.BezPathPen
}

var _ cu2qu.Pen = (*SegmentsPen)(nil)

func (pen *SegmentsPen) MoveTo(pt cu2qu.Point) error { return pen.flush(pen.path.MoveTo(pt)) }
func (pen *SegmentsPen) LineTo(pt cu2qu.Point) error { return pen.flush(pen.path.LineTo(pt)) }

func (pen *SegmentsPen) CurveTo(pts ...cu2qu.Point) error {
	return pen.flush(pen.path.CurveTo(pts...))
}

func (pen *SegmentsPen) QCurveTo(pts ...cu2qu.Point) error {
	return pen.flush(pen.path.QCurveTo(pts...))
}

func (pen *SegmentsPen) ClosePath() error { return pen.flush(pen.path.ClosePath()) }
func (pen *SegmentsPen) EndPath() error   { return pen.flush(pen.path.EndPath()) }

func (pen *SegmentsPen) AddComponent(string, cu2qu.Affine) error { return nil }

// flush moves the elements collected by the path pen to Segments.
func (pen *SegmentsPen) flush(err error) error {
	if err != nil {
		return err
	}
	aff := pen.Transform
	if aff == (cu2qu.Affine{}) {
		aff = cu2qu.Identity
	}
	fx := func(p cu2qu.Point) fixed.Point26_6 {
		p = p.Transform(aff)
		return fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))}
	}
	for _, el := range pen.path.Path {
		var seg sfnt.Segment
		switch el.Kind {
		case cu2qu.MoveToKind:
			seg = sfnt.Segment{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fx(el.P0)}}
		case cu2qu.LineToKind:
			seg = sfnt.Segment{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fx(el.P0)}}
		case cu2qu.QuadToKind:
			seg = sfnt.Segment{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fx(el.P0), fx(el.P1)}}
		case cu2qu.CubicToKind:
			seg = sfnt.Segment{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fx(el.P0), fx(el.P1), fx(el.P2)}}
		default:
			// sfnt contours are closed implicitly.
			continue
		}
		pen.Segments = append(pen.Segments, seg)
	}
	pen.path.Path = pen.path.Path[:0]
	return nil
}
