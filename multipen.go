package cu2qu

// MultiPen is the multi-master variant of [Pen]. Every call takes one
// argument per master, in master order.
type MultiPen interface {
	MoveTo(pts []Point) error
	LineTo(pts []Point) error
	CurveTo(pts [][]Point) error
	QCurveTo(pts [][]Point) error
	ClosePath() error
	EndPath() error
	AddComponent(name string, transforms []Affine) error
}

// Cu2QuMultiPen is a filter multi-pen that converts the cubics of several
// masters to quadratic splines while keeping the masters compatible: the
// cubics drawn by one CurveTo call are converted as a [CurveGroup], so every
// master gets a spline with the same number of segments.
type Cu2QuMultiPen struct {
	outs  []Pen
	opts  Options
	state contourState
	cur   []Point
	// The moveTo of the current contour, if it hasn't been forwarded yet.
	pendingMove option[[]Point]
}

var _ MultiPen = (*Cu2QuMultiPen)(nil)

// NewMultiPen returns a multi-pen drawing master i into outs[i]. Curves of
// master i are converted with a tolerance of opts.MaxErrs[i] if MaxErrs is
// set, which must then have one entry per master, and opts.MaxErr
// otherwise.
//
// With opts.ReverseDirection every contour is reversed. Closing lines are
// then always drawn explicitly, so that the masters stay compatible even if
// only some of them have a closing line of zero length.
func NewMultiPen(outs []Pen, opts Options) (*Cu2QuMultiPen, error) {
	if len(outs) == 0 {
		return nil, countError("NewMultiPen", ErrMasterCount, 0)
	}
	if opts.MaxErrs != nil && len(opts.MaxErrs) != len(outs) {
		return nil, countError("NewMultiPen", ErrMasterCount, len(opts.MaxErrs))
	}
	pens := make([]Pen, len(outs))
	for i, out := range outs {
		if opts.ReverseDirection {
			out = newReverseContourPen(out, true)
		}
		pens[i] = out
	}
	return &Cu2QuMultiPen{outs: pens, opts: opts}, nil
}

// Masters returns the number of masters.
func (pen *Cu2QuMultiPen) Masters() int { return len(pen.outs) }

func (pen *Cu2QuMultiPen) checkMasters(op string, n int) error {
	if n != len(pen.outs) {
		return countError(op, ErrMasterCount, n)
	}
	return nil
}

func (pen *Cu2QuMultiPen) checkOpen(op string) error {
	if pen.state != contourOpen {
		return protocolError(op, ErrNoContour)
	}
	return nil
}

func (pen *Cu2QuMultiPen) checkClosed(op string) error {
	if pen.state != contourClosed {
		return protocolError(op, ErrContourOpen)
	}
	return nil
}

// checkPoints verifies that every master passes the same, non-zero number
// of points.
func (pen *Cu2QuMultiPen) checkPoints(op string, pts [][]Point) error {
	if err := pen.checkMasters(op, len(pts)); err != nil {
		return err
	}
	n := len(pts[0])
	if n == 0 {
		return countError(op, ErrPointCount, 0)
	}
	for _, p := range pts[1:] {
		if len(p) != n {
			return countError(op, ErrPointCount, len(p))
		}
	}
	return nil
}

func (pen *Cu2QuMultiPen) flushMove() error {
	if !pen.pendingMove.isSet {
		return nil
	}
	pts := pen.pendingMove.unwrap()
	pen.pendingMove.clear()
	for i, out := range pen.outs {
		if err := out.MoveTo(pts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (pen *Cu2QuMultiPen) MoveTo(pts []Point) error {
	if err := pen.checkClosed("moveTo"); err != nil {
		return err
	}
	if err := pen.checkMasters("moveTo", len(pts)); err != nil {
		return err
	}
	pen.state = contourOpen
	pen.cur = append(pen.cur[:0], pts...)
	pen.pendingMove.set(append([]Point(nil), pts...))
	if !pen.opts.IgnoreSinglePoints {
		return pen.flushMove()
	}
	return nil
}

func (pen *Cu2QuMultiPen) LineTo(pts []Point) error {
	if err := pen.checkOpen("lineTo"); err != nil {
		return err
	}
	if err := pen.checkMasters("lineTo", len(pts)); err != nil {
		return err
	}
	if err := pen.flushMove(); err != nil {
		return err
	}
	for i, out := range pen.outs {
		if err := out.LineTo(pts[i]); err != nil {
			return err
		}
	}
	copy(pen.cur, pts)
	return nil
}

func (pen *Cu2QuMultiPen) QCurveTo(pts [][]Point) error {
	if err := pen.checkOpen("qCurveTo"); err != nil {
		return err
	}
	if err := pen.checkPoints("qCurveTo", pts); err != nil {
		return err
	}
	return pen.qCurveTo(pts)
}

func (pen *Cu2QuMultiPen) qCurveTo(pts [][]Point) error {
	if len(pts[0]) == 1 {
		return pen.LineTo(lastPoints(pts))
	}
	if err := pen.flushMove(); err != nil {
		return err
	}
	for i, out := range pen.outs {
		if err := out.QCurveTo(pts[i]...); err != nil {
			return err
		}
	}
	copy(pen.cur, lastPoints(pts))
	return nil
}

func lastPoints(pts [][]Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p[len(p)-1]
	}
	return out
}

func (pen *Cu2QuMultiPen) CurveTo(pts [][]Point) error {
	if err := pen.checkOpen("curveTo"); err != nil {
		return err
	}
	if err := pen.checkPoints("curveTo", pts); err != nil {
		return err
	}
	switch n := len(pts[0]); {
	case n < 3:
		return pen.qCurveTo(pts)
	case n == 3:
		return pen.convert(pts)
	default:
		// Decomposition only depends on the number of points, so every
		// master yields the same number of cubics.
		decomposed := make([][][3]Point, len(pts))
		for i, p := range pts {
			decomposed[i] = DecomposeSuperBezier(p)
		}
		for j := range decomposed[0] {
			seg := make([][]Point, len(pts))
			for i := range pts {
				seg[i] = decomposed[i][j][:]
			}
			if err := pen.convert(seg); err != nil {
				return err
			}
		}
		return nil
	}
}

// convert replaces one cubic per master, each starting at that master's
// current point, with compatible quadratic splines.
func (pen *Cu2QuMultiPen) convert(pts [][]Point) error {
	curves := make([]CubicBez, len(pts))
	for i, p := range pts {
		curves[i] = CubicBez{pen.cur[i], p[0], p[1], p[2]}
	}
	group, err := NewCurveGroup(curves...)
	if err != nil {
		return err
	}
	if pen.opts.MaxErrs != nil {
		if group, err = group.WithTolerances(pen.opts.MaxErrs...); err != nil {
			return err
		}
	}
	cv := Convert(group, pen.opts)
	if cv.Retained() {
		if err := pen.flushMove(); err != nil {
			return err
		}
		for i, out := range pen.outs {
			if err := out.CurveTo(pts[i]...); err != nil {
				return err
			}
		}
		copy(pen.cur, lastPoints(pts))
		return nil
	}
	quads := make([][]Point, len(cv.Splines))
	for i, spline := range cv.Splines {
		quads[i] = spline[1:]
	}
	return pen.qCurveTo(quads)
}

func (pen *Cu2QuMultiPen) ClosePath() error {
	return pen.finish("closePath", Pen.ClosePath)
}

func (pen *Cu2QuMultiPen) EndPath() error {
	return pen.finish("endPath", Pen.EndPath)
}

func (pen *Cu2QuMultiPen) finish(op string, fn func(Pen) error) error {
	if err := pen.checkOpen(op); err != nil {
		return err
	}
	pen.state = contourClosed
	if pen.pendingMove.isSet {
		pen.pendingMove.clear()
		return nil
	}
	for _, out := range pen.outs {
		if err := fn(out); err != nil {
			return err
		}
	}
	return nil
}

func (pen *Cu2QuMultiPen) AddComponent(name string, transforms []Affine) error {
	if err := pen.checkClosed("addComponent"); err != nil {
		return err
	}
	if err := pen.checkMasters("addComponent", len(transforms)); err != nil {
		return err
	}
	for i, out := range pen.outs {
		if err := out.AddComponent(name, transforms[i]); err != nil {
			return err
		}
	}
	return nil
}
