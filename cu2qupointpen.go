package cu2qu

import "fmt"

// Cu2QuPointPen is a filtering point pen that converts cubic segments to
// quadratic splines. Contours keep their starting point, and converted
// segments keep the attributes of their final on-curve point. The on-curve
// points introduced by decomposing super-Béziers are marked smooth.
type Cu2QuPointPen struct {
	out  PointPen
	opts Options
	buf  contourBuffer
}

var _ PointPen = (*Cu2QuPointPen)(nil)

// NewPointPen returns a point pen that draws into out, converting curves
// with a maximum error of opts.MaxErr. With opts.ReverseDirection, contours
// are reversed on their way to out.
func NewPointPen(out PointPen, opts Options) *Cu2QuPointPen {
	if opts.ReverseDirection {
		out = NewReverseContourPointPen(out)
	}
	return &Cu2QuPointPen{out: out, opts: opts}
}

func (pen *Cu2QuPointPen) BeginPath() error { return pen.buf.begin() }

func (pen *Cu2QuPointPen) AddPoint(pt Point, typ SegmentType, smooth bool, name string) error {
	return pen.buf.add(ContourPoint{pt, typ, smooth, name})
}

func (pen *Cu2QuPointPen) AddComponent(name string, transform Affine) error {
	if err := pen.buf.checkClosed("addComponent"); err != nil {
		return err
	}
	return pen.out.AddComponent(name, transform)
}

func (pen *Cu2QuPointPen) EndPath() error {
	pts, err := pen.buf.end()
	if err != nil {
		return err
	}
	segs, err := splitSegments(pts)
	if err != nil {
		return fmt.Errorf("cu2qu: endPath: %w", err)
	}
	switch {
	case len(segs) == 0:
		return nil
	case segs[0].implied:
		// Nothing to convert in a contour without on-curve points.
		return pen.drawPoints(pts)
	}

	closed := segs[0].typ != Move
	prev := segs[len(segs)-1].last().Pt
	out := make([]pointSegment, 0, len(segs))
	for _, seg := range segs {
		if seg.typ == Curve {
			out = append(out, pen.convert(prev, seg)...)
		} else {
			out = append(out, seg)
		}
		prev = seg.last().Pt
	}
	if closed {
		// splitSegments rotated the contour to end with its first on-curve
		// point. Rotate it back.
		out = append(out[len(out)-1:], out[:len(out)-1]...)
	}
	return pen.drawSegments(out)
}

// convert returns the segments replacing a curve segment that starts at
// prev.
func (pen *Cu2QuPointPen) convert(prev Point, seg pointSegment) []pointSegment {
	switch len(seg.points) {
	case 1:
		return []pointSegment{{typ: Line, points: retype(seg.points, Line)}}
	case 2:
		return []pointSegment{{typ: QCurve, points: retype(seg.points, QCurve)}}
	}

	var subs [][3]ContourPoint
	if len(seg.points) == 3 {
		subs = [][3]ContourPoint{{seg.points[0], seg.points[1], seg.points[2]}}
	} else {
		pts := make([]Point, len(seg.points))
		for i, p := range seg.points {
			pts[i] = p.Pt
		}
		cubics := DecomposeSuperBezier(pts)
		for i, c := range cubics {
			on := ContourPoint{Pt: c[2], Type: Curve, Smooth: true}
			if i == len(cubics)-1 {
				on = seg.last()
			}
			subs = append(subs, [3]ContourPoint{{Pt: c[0]}, {Pt: c[1]}, on})
		}
	}

	out := make([]pointSegment, 0, len(subs))
	for _, sub := range subs {
		on := sub[2]
		cv := Convert(CubicBez{prev, sub[0].Pt, sub[1].Pt, on.Pt}, pen.opts)
		if cv.Retained() {
			on.Type = Curve
			out = append(out, pointSegment{typ: Curve, points: []ContourPoint{{Pt: sub[0].Pt}, {Pt: sub[1].Pt}, on}})
		} else {
			spline := cv.Splines[0]
			points := make([]ContourPoint, 0, len(spline)-1)
			for _, pt := range spline[1 : len(spline)-1] {
				points = append(points, ContourPoint{Pt: pt})
			}
			on.Type = QCurve
			out = append(out, pointSegment{typ: QCurve, points: append(points, on)})
		}
		prev = on.Pt
	}
	return out
}

func retype(pts []ContourPoint, typ SegmentType) []ContourPoint {
	out := make([]ContourPoint, len(pts))
	copy(out, pts)
	out[len(out)-1].Type = typ
	return out
}

func (pen *Cu2QuPointPen) drawSegments(segs []pointSegment) error {
	var pts []ContourPoint
	// Off-curve points leading up to the first on-curve point go to the end
	// of the contour.
	var trailing []ContourPoint
	for i, seg := range segs {
		offs := seg.points[:len(seg.points)-1]
		if i == 0 {
			trailing = offs
		} else {
			pts = append(pts, offs...)
		}
		on := seg.last()
		on.Type = seg.typ
		pts = append(pts, on)
	}
	return pen.drawPoints(append(pts, trailing...))
}

func (pen *Cu2QuPointPen) drawPoints(pts []ContourPoint) error {
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
