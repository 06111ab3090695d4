package cu2qu

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the point the element ends at. ClosePath has no end
// point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path made of lines, quadratic and cubic Béziers. It is the
// bridge between pens and code that wants outlines as data: [BezPathPen]
// builds a BezPath from pen calls, and [BezPath.Draw] draws one into a pen.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to
// every element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// SignedArea returns the signed area of the path, treating every subpath as
// closed.
func (p BezPath) SignedArea() float64 {
	var area float64
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			area += InfiniteLine{cur, start}.SignedArea()
			start, cur = el.P0, el.P0
			continue
		case LineToKind:
			area += InfiniteLine{cur, el.P0}.SignedArea()
		case QuadToKind:
			area += QuadBez{cur, el.P0, el.P1}.SignedArea()
		case CubicToKind:
			area += CubicBez{cur, el.P0, el.P1, el.P2}.SignedArea()
		case ClosePathKind:
			area += InfiniteLine{cur, start}.SignedArea()
			cur = start
			continue
		}
		cur, _ = el.EndPoint()
	}
	return area + InfiniteLine{cur, start}.SignedArea()
}

// Counts returns the number of elements of each kind.
func (p BezPath) Counts() map[PathElementKind]int {
	out := make(map[PathElementKind]int)
	for _, el := range p {
		out[el.Kind]++
	}
	return out
}

// SVG returns the path as a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Draw draws the path into pen, implementing [Drawer]. Subpaths that
// aren't closed are ended with EndPath.
func (p BezPath) Draw(pen Pen) error {
	open := false
	for _, el := range p {
		var err error
		switch el.Kind {
		case MoveToKind:
			if open {
				if err := pen.EndPath(); err != nil {
					return err
				}
			}
			open = true
			err = pen.MoveTo(el.P0)
		case LineToKind:
			err = pen.LineTo(el.P0)
		case QuadToKind:
			err = pen.QCurveTo(el.P0, el.P1)
		case CubicToKind:
			err = pen.CurveTo(el.P0, el.P1, el.P2)
		case ClosePathKind:
			open = false
			err = pen.ClosePath()
		default:
			err = fmt.Errorf("cu2qu: invalid path element %v", el.Kind)
		}
		if err != nil {
			return err
		}
	}
	if open {
		return pen.EndPath()
	}
	return nil
}

// BezPathPen is a [Pen] that builds a [BezPath]. Quadratic B-splines are
// split into their quadratic Bézier segments and super-Béziers into their
// cubics, so the path only holds plain elements.
type BezPathPen struct {
	Path BezPath
	// Components resolves the glyphs referenced by AddComponent. If it is
	// nil, or doesn't know a glyph, the component is skipped.
	Components func(name string) (Drawer, bool)
	cur        Point
}

var _ Pen = (*BezPathPen)(nil)

func (pen *BezPathPen) MoveTo(pt Point) error {
	pen.Path.MoveTo(pt)
	pen.cur = pt
	return nil
}

func (pen *BezPathPen) LineTo(pt Point) error {
	pen.Path.LineTo(pt)
	pen.cur = pt
	return nil
}

func (pen *BezPathPen) QCurveTo(pts ...Point) error {
	switch len(pts) {
	case 0:
		return countError("qCurveTo", ErrPointCount, 0)
	case 1:
		return pen.LineTo(pts[0])
	}
	spline := append(QuadBSpline{pen.cur}, pts...)
	for q := range spline.Quads() {
		pen.Path.QuadTo(q.P1, q.P2)
	}
	pen.cur = pts[len(pts)-1]
	return nil
}

func (pen *BezPathPen) CurveTo(pts ...Point) error {
	switch len(pts) {
	case 0:
		return countError("curveTo", ErrPointCount, 0)
	case 1:
		return pen.LineTo(pts[0])
	case 2:
		return pen.QCurveTo(pts...)
	}
	for _, c := range DecomposeSuperBezier(pts) {
		pen.Path.CubicTo(c[0], c[1], c[2])
	}
	pen.cur = pts[len(pts)-1]
	return nil
}

func (pen *BezPathPen) ClosePath() error {
	pen.Path.ClosePath()
	return nil
}

func (pen *BezPathPen) EndPath() error { return nil }

func (pen *BezPathPen) AddComponent(name string, transform Affine) error {
	if pen.Components == nil {
		return nil
	}
	g, ok := pen.Components(name)
	if !ok {
		return nil
	}
	return g.Draw(NewTransformPen(pen, transform))
}
