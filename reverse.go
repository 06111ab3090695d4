package cu2qu

import "slices"

// ReverseContourPointPen is a filtering point pen that reverses the
// direction of every contour. Closed contours keep their starting point.
type ReverseContourPointPen struct {
	out PointPen
	buf contourBuffer
}

var _ PointPen = (*ReverseContourPointPen)(nil)

func NewReverseContourPointPen(out PointPen) *ReverseContourPointPen {
	return &ReverseContourPointPen{out: out}
}

func (pen *ReverseContourPointPen) BeginPath() error { return pen.buf.begin() }

func (pen *ReverseContourPointPen) AddPoint(pt Point, typ SegmentType, smooth bool, name string) error {
	return pen.buf.add(ContourPoint{pt, typ, smooth, name})
}

func (pen *ReverseContourPointPen) EndPath() error {
	pts, err := pen.buf.end()
	if err != nil {
		return err
	}
	if err := pen.out.BeginPath(); err != nil {
		return err
	}
	for _, p := range reverseContour(pts) {
		if err := pen.out.AddPoint(p.Pt, p.Type, p.Smooth, p.Name); err != nil {
			return err
		}
	}
	return pen.out.EndPath()
}

func (pen *ReverseContourPointPen) AddComponent(name string, transform Affine) error {
	if err := pen.buf.checkClosed("addComponent"); err != nil {
		return err
	}
	return pen.out.AddComponent(name, transform)
}

// reverseContour returns the points of a contour in reverse order. Since an
// on-curve point carries the type of the segment it ends, the types move
// along with the segments: each on-curve point takes the type of the next
// on-curve point in the original order.
func reverseContour(pts []ContourPoint) []ContourPoint {
	if len(pts) == 0 {
		return nil
	}
	c := slices.Clone(pts)
	closed := c[0].Type != Move
	var lastType SegmentType
	if closed {
		// Move the first point to the end, so that after reversing it is
		// at the start again.
		c = append(c[1:], c[0])
		if i := slices.IndexFunc(c, func(p ContourPoint) bool { return p.Type.OnCurve() }); i >= 0 {
			lastType = c[i].Type
		}
	} else {
		lastType = Move
	}
	slices.Reverse(c)
	if !closed {
		// An open contour has to start on-curve.
		i := slices.IndexFunc(c, func(p ContourPoint) bool { return p.Type.OnCurve() })
		c = c[i:]
	}
	for i := range c {
		if c[i].Type.OnCurve() {
			c[i].Type, lastType = lastType, c[i].Type
		}
	}
	return c
}

// NewReverseContourPen returns a segment pen that reverses the direction of
// every contour before drawing it into out. Closed contours keep their
// starting point.
func NewReverseContourPen(out Pen) Pen {
	return newReverseContourPen(out, false)
}

func newReverseContourPen(out Pen, impliedClosingLine bool) Pen {
	seg := NewPointToSegmentPen(out)
	seg.OutputImpliedClosingLine = impliedClosingLine
	return NewSegmentToPointPen(NewReverseContourPointPen(seg), false)
}
