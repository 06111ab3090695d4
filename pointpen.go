package cu2qu

import (
	"fmt"
	"math"
)

// SegmentType is the type of a point in a point pen contour. On-curve
// points carry the type of the segment they end; off-curve points have
// type OffCurve.
type SegmentType uint8

const (
	OffCurve SegmentType = iota
	// Move is the first point of an open contour.
	Move
	Line
	Curve
	QCurve
)

func (t SegmentType) String() string {
	switch t {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	default:
		return fmt.Sprintf("SegmentType(%d)", t)
	}
}

// OnCurve reports whether points of this type lie on the outline.
func (t SegmentType) OnCurve() bool { return t != OffCurve }

// PointPen receives outlines point by point. Contours are delimited by
// BeginPath and EndPath; a contour is open if its first point has type
// Move and closed otherwise.
type PointPen interface {
	BeginPath() error
	AddPoint(pt Point, typ SegmentType, smooth bool, name string) error
	EndPath() error
	AddComponent(name string, transform Affine) error
}

// ContourPoint is a point as passed to [PointPen.AddPoint].
type ContourPoint struct {
	Pt     Point
	Type   SegmentType
	Smooth bool
	Name   string
}

func (p ContourPoint) String() string {
	return fmt.Sprintf("%s %s smooth=%t name=%q", p.Pt, p.Type, p.Smooth, p.Name)
}

// contourBuffer collects the points of the contour being drawn into a
// point pen.
type contourBuffer struct {
	points []ContourPoint
	open   bool
}

func (b *contourBuffer) begin() error {
	if b.open {
		return protocolError("beginPath", ErrContourOpen)
	}
	b.open = true
	b.points = b.points[:0]
	return nil
}

func (b *contourBuffer) add(p ContourPoint) error {
	if !b.open {
		return protocolError("addPoint", ErrNoContour)
	}
	b.points = append(b.points, p)
	return nil
}

// end returns the collected points. The slice is only valid until the
// next call to begin.
func (b *contourBuffer) end() ([]ContourPoint, error) {
	if !b.open {
		return nil, protocolError("endPath", ErrNoContour)
	}
	b.open = false
	return b.points, nil
}

func (b *contourBuffer) checkClosed(op string) error {
	if b.open {
		return protocolError(op, ErrContourOpen)
	}
	return nil
}

// pointSegment is a run of off-curve points ending in one on-curve point,
// which determines the segment's type.
type pointSegment struct {
	typ    SegmentType
	points []ContourPoint
	// implied is set for the single segment of a contour without on-curve
	// points. Its last point was synthesized and isn't part of the input.
	implied bool
}

func (seg pointSegment) last() ContourPoint { return seg.points[len(seg.points)-1] }

// splitSegments groups the points of a contour into segments. An open
// contour yields a leading Move segment holding its first point. A closed
// contour is rotated so that it ends with its first on-curve point, which
// makes the final segment end at the point the contour starts from.
// Off-curve points after the last on-curve point of an open contour are
// dropped.
func splitSegments(pts []ContourPoint) ([]pointSegment, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	if len(pts) == 1 {
		return []pointSegment{{typ: Move, points: pts}}, nil
	}
	var segs []pointSegment
	if pts[0].Type == Move {
		segs = append(segs, pointSegment{typ: Move, points: pts[:1]})
		pts = pts[1:]
	} else {
		first := -1
		for i, p := range pts {
			if p.Type.OnCurve() {
				first = i
				break
			}
		}
		if first == -1 {
			// A quadratic contour made of off-curve points only. Close it
			// with the on-curve point implied between its last and first
			// points.
			mid := pts[len(pts)-1].Pt.Midpoint(pts[0].Pt)
			all := append(append([]ContourPoint(nil), pts...), ContourPoint{Pt: mid, Type: QCurve})
			return []pointSegment{{typ: QCurve, points: all, implied: true}}, nil
		}
		rot := make([]ContourPoint, 0, len(pts))
		rot = append(rot, pts[first+1:]...)
		pts = append(rot, pts[:first+1]...)
	}

	start := 0
	for i, p := range pts {
		if !p.Type.OnCurve() {
			continue
		}
		if p.Type == Move {
			return nil, fmt.Errorf("point %d: %w", i, ErrSegmentType)
		}
		segs = append(segs, pointSegment{typ: p.Type, points: pts[start : i+1]})
		start = i + 1
	}
	return segs, nil
}

// PointToSegmentPen adapts a segment [Pen] to the [PointPen] protocol.
type PointToSegmentPen struct {
	out Pen
	buf contourBuffer
	// OutputImpliedClosingLine makes closed contours end in an explicit
	// lineTo back to the starting point. Without it, such a line is left
	// implicit, unless it is needed to preserve a duplicate point.
	OutputImpliedClosingLine bool
}

var _ PointPen = (*PointToSegmentPen)(nil)

// NewPointToSegmentPen returns a point pen that draws into out.
func NewPointToSegmentPen(out Pen) *PointToSegmentPen {
	return &PointToSegmentPen{out: out}
}

func (pen *PointToSegmentPen) BeginPath() error { return pen.buf.begin() }

func (pen *PointToSegmentPen) AddPoint(pt Point, typ SegmentType, smooth bool, name string) error {
	return pen.buf.add(ContourPoint{pt, typ, smooth, name})
}

func (pen *PointToSegmentPen) EndPath() error {
	pts, err := pen.buf.end()
	if err != nil {
		return err
	}
	segs, err := splitSegments(pts)
	if err != nil {
		return fmt.Errorf("cu2qu: endPath: %w", err)
	}
	if len(segs) == 0 {
		return nil
	}
	return pen.drawSegments(segs)
}

func (pen *PointToSegmentPen) drawSegments(segs []pointSegment) error {
	var start Point
	closed := segs[0].typ != Move
	if closed {
		start = segs[len(segs)-1].last().Pt
	} else {
		start = segs[0].points[0].Pt
		segs = segs[1:]
	}
	if err := pen.out.MoveTo(start); err != nil {
		return err
	}

	last := start
	for i, seg := range segs {
		pts := make([]Point, len(seg.points))
		for j, p := range seg.points {
			pts[j] = p.Pt
		}
		var err error
		switch seg.typ {
		case Line:
			if len(pts) != 1 {
				return fmt.Errorf("cu2qu: line segment with %d points: %w", len(pts), ErrPointCount)
			}
			// The closing line of a closed contour is implied, unless it
			// ends on a duplicate of the previous point.
			if i+1 != len(segs) || pen.OutputImpliedClosingLine || !closed || pts[0] == last {
				err = pen.out.LineTo(pts[0])
			}
		case Curve:
			err = pen.out.CurveTo(pts...)
		case QCurve:
			err = pen.out.QCurveTo(pts...)
		default:
			return fmt.Errorf("cu2qu: segment type %s: %w", seg.typ, ErrSegmentType)
		}
		if err != nil {
			return err
		}
		last = pts[len(pts)-1]
	}
	if closed {
		return pen.out.ClosePath()
	}
	return pen.out.EndPath()
}

func (pen *PointToSegmentPen) AddComponent(name string, transform Affine) error {
	if err := pen.buf.checkClosed("addComponent"); err != nil {
		return err
	}
	return pen.out.AddComponent(name, transform)
}

// SegmentToPointPen adapts a [PointPen] to the segment [Pen] protocol.
type SegmentToPointPen struct {
	out     PointPen
	contour []ContourPoint
	open    bool
}

var _ Pen = (*SegmentToPointPen)(nil)

// NewSegmentToPointPen returns a segment pen that draws into out. If
// guessSmooth is true, the smooth flags of on-curve points are inferred
// with a [GuessSmoothPointPen].
func NewSegmentToPointPen(out PointPen, guessSmooth bool) *SegmentToPointPen {
	if guessSmooth {
		out = NewGuessSmoothPointPen(out)
	}
	return &SegmentToPointPen{out: out}
}

func (pen *SegmentToPointPen) MoveTo(pt Point) error {
	if pen.open {
		return protocolError("moveTo", ErrContourOpen)
	}
	pen.open = true
	pen.contour = append(pen.contour[:0], ContourPoint{Pt: pt, Type: Move})
	return nil
}

func (pen *SegmentToPointPen) LineTo(pt Point) error {
	if !pen.open {
		return protocolError("lineTo", ErrNoContour)
	}
	pen.contour = append(pen.contour, ContourPoint{Pt: pt, Type: Line})
	return nil
}

func (pen *SegmentToPointPen) CurveTo(pts ...Point) error {
	return pen.addSegment("curveTo", Curve, pts)
}

func (pen *SegmentToPointPen) QCurveTo(pts ...Point) error {
	return pen.addSegment("qCurveTo", QCurve, pts)
}

func (pen *SegmentToPointPen) addSegment(op string, typ SegmentType, pts []Point) error {
	if !pen.open {
		return protocolError(op, ErrNoContour)
	}
	if len(pts) == 0 {
		return countError(op, ErrPointCount, 0)
	}
	for _, pt := range pts[:len(pts)-1] {
		pen.contour = append(pen.contour, ContourPoint{Pt: pt})
	}
	pen.contour = append(pen.contour, ContourPoint{Pt: pts[len(pts)-1], Type: typ})
	return nil
}

func (pen *SegmentToPointPen) ClosePath() error {
	if !pen.open {
		return protocolError("closePath", ErrNoContour)
	}
	c := pen.contour
	if n := len(c); n > 1 && c[0].Pt == c[n-1].Pt {
		// The last segment ends at the starting point, which it replaces.
		c[0] = c[n-1]
		pen.contour = c[:n-1]
	} else if c[0].Type == Move {
		c[0].Type = Line
	}
	return pen.flush()
}

func (pen *SegmentToPointPen) EndPath() error {
	if !pen.open {
		return protocolError("endPath", ErrNoContour)
	}
	return pen.flush()
}

func (pen *SegmentToPointPen) flush() error {
	pen.open = false
	if err := pen.out.BeginPath(); err != nil {
		return err
	}
	for _, p := range pen.contour {
		if err := pen.out.AddPoint(p.Pt, p.Type, p.Smooth, p.Name); err != nil {
			return err
		}
	}
	return pen.out.EndPath()
}

func (pen *SegmentToPointPen) AddComponent(name string, transform Affine) error {
	if pen.open {
		return protocolError("addComponent", ErrContourOpen)
	}
	return pen.out.AddComponent(name, transform)
}

// smoothAngleTolerance is the largest difference, in radians, between the
// incoming and outgoing direction at which GuessSmoothPointPen marks a
// point as smooth.
const smoothAngleTolerance = 0.05

// GuessSmoothPointPen is a filtering point pen that sets the smooth flag of
// on-curve points whose incoming and outgoing directions agree, if at least
// one of their neighbors is an off-curve point. It never clears a flag.
type GuessSmoothPointPen struct {
	out PointPen
	buf contourBuffer
}

var _ PointPen = (*GuessSmoothPointPen)(nil)

func NewGuessSmoothPointPen(out PointPen) *GuessSmoothPointPen {
	return &GuessSmoothPointPen{out: out}
}

func (pen *GuessSmoothPointPen) BeginPath() error { return pen.buf.begin() }

func (pen *GuessSmoothPointPen) AddPoint(pt Point, typ SegmentType, smooth bool, name string) error {
	return pen.buf.add(ContourPoint{pt, typ, smooth, name})
}

func (pen *GuessSmoothPointPen) EndPath() error {
	pts, err := pen.buf.end()
	if err != nil {
		return err
	}
	guessSmooth(pts)
	if err := pen.out.BeginPath(); err != nil {
		return err
	}
	for _, p := range pts {
		if err := pen.out.AddPoint(p.Pt, p.Type, p.Smooth, p.Name); err != nil {
			return err
		}
	}
	return pen.out.EndPath()
}

func (pen *GuessSmoothPointPen) AddComponent(name string, transform Affine) error {
	if err := pen.buf.checkClosed("addComponent"); err != nil {
		return err
	}
	return pen.out.AddComponent(name, transform)
}

func guessSmooth(pts []ContourPoint) {
	n := len(pts)
	lo, hi := 0, n
	switch {
	case n == 0:
		return
	case pts[0].Type == Move:
		// The end points of an open contour have only one neighbor.
		lo, hi = 1, n-1
	case n == 1:
		return
	}
	for i := lo; i < hi; i++ {
		p := pts[i]
		if !p.Type.OnCurve() {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		if prev.Type.OnCurve() && next.Type.OnCurve() {
			continue
		}
		if p.Pt == prev.Pt || p.Pt == next.Pt {
			continue
		}
		a1 := p.Pt.Sub(prev.Pt).Angle()
		a2 := next.Pt.Sub(p.Pt).Angle()
		if math.Abs(a1-a2) < smoothAngleTolerance {
			pts[i].Smooth = true
		}
	}
}
