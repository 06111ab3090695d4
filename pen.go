package cu2qu

// Pen receives outlines as a sequence of segment drawing calls.
//
// A contour starts with MoveTo and ends with ClosePath or EndPath. CurveTo
// takes the off-curve points of a cubic (or super-Bézier) followed by the
// end point. QCurveTo takes the off-curve points of a quadratic B-spline
// followed by the end point, in the implied on-curve encoding used by
// [QuadBSpline]. Components reference other glyphs and may only be added
// outside of contours.
type Pen interface {
	MoveTo(pt Point) error
	LineTo(pt Point) error
	CurveTo(pts ...Point) error
	QCurveTo(pts ...Point) error
	ClosePath() error
	EndPath() error
	AddComponent(name string, transform Affine) error
}

type contourState uint8

const (
	contourClosed contourState = iota
	contourOpen
)

// Cu2QuPen is a filter pen that converts cubic curves to quadratic splines
// and forwards everything to another pen.
type Cu2QuPen struct {
	out   Pen
	opts  Options
	state contourState
	cur   Point
	// The moveTo of the current contour, if it hasn't been forwarded yet.
	pendingMove option[Point]
}

var _ Pen = (*Cu2QuPen)(nil)

// NewPen returns a pen that draws into out, converting every curveTo to a
// qCurveTo with a maximum error of opts.MaxErr.
//
// With opts.ReverseDirection, contours are reversed on their way to out.
// With opts.IgnoreSinglePoints, contours consisting of a lone moveTo are
// dropped.
func NewPen(out Pen, opts Options) *Cu2QuPen {
	if opts.ReverseDirection {
		out = NewReverseContourPen(out)
	}
	return &Cu2QuPen{out: out, opts: opts}
}

func (pen *Cu2QuPen) checkOpen(op string) error {
	if pen.state != contourOpen {
		return protocolError(op, ErrNoContour)
	}
	return nil
}

func (pen *Cu2QuPen) checkClosed(op string) error {
	if pen.state != contourClosed {
		return protocolError(op, ErrContourOpen)
	}
	return nil
}

func (pen *Cu2QuPen) flushMove() error {
	if !pen.pendingMove.isSet {
		return nil
	}
	pt := pen.pendingMove.unwrap()
	pen.pendingMove.clear()
	return pen.out.MoveTo(pt)
}

func (pen *Cu2QuPen) MoveTo(pt Point) error {
	if err := pen.checkClosed("moveTo"); err != nil {
		return err
	}
	pen.state = contourOpen
	pen.cur = pt
	pen.pendingMove.set(pt)
	if !pen.opts.IgnoreSinglePoints {
		return pen.flushMove()
	}
	return nil
}

func (pen *Cu2QuPen) LineTo(pt Point) error {
	if err := pen.checkOpen("lineTo"); err != nil {
		return err
	}
	if err := pen.flushMove(); err != nil {
		return err
	}
	pen.cur = pt
	return pen.out.LineTo(pt)
}

func (pen *Cu2QuPen) QCurveTo(pts ...Point) error {
	if err := pen.checkOpen("qCurveTo"); err != nil {
		return err
	}
	switch len(pts) {
	case 0:
		return countError("qCurveTo", ErrPointCount, 0)
	case 1:
		return pen.LineTo(pts[0])
	}
	if err := pen.flushMove(); err != nil {
		return err
	}
	pen.cur = pts[len(pts)-1]
	return pen.out.QCurveTo(pts...)
}

func (pen *Cu2QuPen) CurveTo(pts ...Point) error {
	if err := pen.checkOpen("curveTo"); err != nil {
		return err
	}
	switch n := len(pts); {
	case n == 0:
		return countError("curveTo", ErrPointCount, 0)
	case n == 1:
		return pen.LineTo(pts[0])
	case n == 2:
		return pen.QCurveTo(pts...)
	case n == 3:
		return pen.convert(pts[0], pts[1], pts[2])
	default:
		for _, seg := range DecomposeSuperBezier(pts) {
			if err := pen.convert(seg[0], seg[1], seg[2]); err != nil {
				return err
			}
		}
		return nil
	}
}

// convert replaces the cubic from the current point with its quadratic
// approximation.
func (pen *Cu2QuPen) convert(p1, p2, p3 Point) error {
	cv := Convert(CubicBez{pen.cur, p1, p2, p3}, pen.opts)
	if cv.Retained() {
		if err := pen.flushMove(); err != nil {
			return err
		}
		pen.cur = p3
		return pen.out.CurveTo(p1, p2, p3)
	}
	return pen.QCurveTo(cv.Splines[0][1:]...)
}

func (pen *Cu2QuPen) ClosePath() error {
	return pen.finish("closePath", pen.out.ClosePath)
}

func (pen *Cu2QuPen) EndPath() error {
	return pen.finish("endPath", pen.out.EndPath)
}

func (pen *Cu2QuPen) finish(op string, fn func() error) error {
	if err := pen.checkOpen(op); err != nil {
		return err
	}
	pen.state = contourClosed
	if pen.pendingMove.isSet {
		// A lone moveTo that IgnoreSinglePoints swallowed.
		pen.pendingMove.clear()
		return nil
	}
	return fn()
}

func (pen *Cu2QuPen) AddComponent(name string, transform Affine) error {
	if err := pen.checkClosed("addComponent"); err != nil {
		return err
	}
	return pen.out.AddComponent(name, transform)
}
