// Package otpen connects the fonts of github.com/go-text/typesetting to
// cu2qu pens: glyph outlines of a face can be drawn into a pen, and a pen
// can build a glyph outline.
package otpen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"honnef.co/go/cu2qu"
)

var (
	// ErrNoGlyph is returned for runes the face doesn't map.
	ErrNoGlyph = errors.New("otpen: no glyph for rune")
	// ErrNoOutline is returned for glyphs that aren't vector outlines,
	// such as bitmap or SVG glyphs.
	ErrNoOutline = errors.New("otpen: glyph has no outline")
)

// Load parses an OpenType or TrueType font.
func Load(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("otpen: %w", err)
	}
	return face, nil
}

// UnitsPerEm returns the face's units per em.
func UnitsPerEm(face *font.Face) float64 { return float64(face.Upem()) }

// Glyph is a glyph of a face. It implements [cu2qu.Drawer], drawing the
// outline in font units with the Y axis pointing up.
//
// Faces cache lookups and must not be used concurrently; give every
// goroutine its own face.
type Glyph struct {
	Face *font.Face
	GID  font.GID
}

var _ cu2qu.Drawer = Glyph{}

// GlyphForRune returns the glyph that face maps r to.
func GlyphForRune(face *font.Face, r rune) (Glyph, error) {
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return Glyph{}, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	return Glyph{Face: face, GID: gid}, nil
}

// Outline returns the glyph's outline.
func (g Glyph) Outline() (font.GlyphOutline, error) {
	switch data := g.Face.GlyphData(g.GID).(type) {
	case font.GlyphOutline:
		return data, nil
	default:
		return font.GlyphOutline{}, fmt.Errorf("%w: glyph %d", ErrNoOutline, g.GID)
	}
}

func (g Glyph) Draw(pen cu2qu.Pen) error {
	o, err := g.Outline()
	if err != nil {
		return err
	}
	return DrawOutline(pen, o)
}

// DrawOutline draws o into pen. Every MoveTo starts a new contour, and all
// contours are closed.
func DrawOutline(pen cu2qu.Pen, o font.GlyphOutline) error {
	open := false
	for i := range o.Segments {
		seg := &o.Segments[i]
		args := seg.ArgsSlice()
		pts := make([]cu2qu.Point, len(args))
		for j, a := range args {
			pts[j] = cu2qu.Pt(float64(a.X), float64(a.Y))
		}
		var err error
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				if err := pen.ClosePath(); err != nil {
					return err
				}
			}
			open = true
			err = pen.MoveTo(pts[0])
		case ot.SegmentOpLineTo:
			err = pen.LineTo(pts[0])
		case ot.SegmentOpQuadTo:
			err = pen.QCurveTo(pts...)
		case ot.SegmentOpCubeTo:
			err = pen.CurveTo(pts...)
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

// OutlinePen is a [cu2qu.Pen] that builds a glyph outline. Quadratic
// splines are split into their quadratic Béziers and super-Béziers into
// cubics. Components are ignored.
type OutlinePen struct {
	Outline font.GlyphOutline
	path    cu2qu.BezPathPen
}

var _ cu2qu.Pen = (*OutlinePen)(nil)

func (pen *OutlinePen) MoveTo(pt cu2qu.Point) error { return pen.flush(pen.path.MoveTo(pt)) }
func (pen *OutlinePen) LineTo(pt cu2qu.Point) error { return pen.flush(pen.path.LineTo(pt)) }

func (pen *OutlinePen) CurveTo(pts ...cu2qu.Point) error {
	return pen.flush(pen.path.CurveTo(pts...))
}

func (pen *OutlinePen) QCurveTo(pts ...cu2qu.Point) error {
	return pen.flush(pen.path.QCurveTo(pts...))
}

func (pen *OutlinePen) ClosePath() error                        { return pen.flush(pen.path.ClosePath()) }
func (pen *OutlinePen) EndPath() error                          { return pen.flush(pen.path.EndPath()) }
func (pen *OutlinePen) AddComponent(string, cu2qu.Affine) error { return nil }

func (pen *OutlinePen) flush(err error) error {
	if err != nil {
		return err
	}
	sp := func(p cu2qu.Point) ot.SegmentPoint {
		return ot.SegmentPoint{X: float32(p.X), Y: float32(p.Y)}
	}
	for _, el := range pen.path.Path {
		var seg font.Segment
		switch el.Kind {
		case cu2qu.MoveToKind:
			seg = font.Segment{Op: ot.SegmentOpMoveTo, Args: [3]ot.SegmentPoint{sp(el.P0)}}
		case cu2qu.LineToKind:
			seg = font.Segment{Op: ot.SegmentOpLineTo, Args: [3]ot.SegmentPoint{sp(el.P0)}}
		case cu2qu.QuadToKind:
			seg = font.Segment{Op: ot.SegmentOpQuadTo, Args: [3]ot.SegmentPoint{sp(el.P0), sp(el.P1)}}
		case cu2qu.CubicToKind:
			seg = font.Segment{Op: ot.SegmentOpCubeTo, Args: [3]ot.SegmentPoint{sp(el.P0), sp(el.P1), sp(el.P2)}}
		default:
			continue
		}
		pen.Outline.Segments = append(pen.Outline.Segments, seg)
	}
	pen.path.Path = pen.path.Path[:0]
	return nil
}
