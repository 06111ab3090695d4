package cu2qu

// TransformPen is a filter pen that applies an affine transformation to
// every point before forwarding it. Component transformations are composed
// with it.
type TransformPen struct {
	out Pen
	aff Affine
}

var _ Pen = (*TransformPen)(nil)

func NewTransformPen(out Pen, aff Affine) *TransformPen {
	return &TransformPen{out: out, aff: aff}
}

func (pen *TransformPen) points(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(pen.aff)
	}
	return out
}

func (pen *TransformPen) MoveTo(pt Point) error { return pen.out.MoveTo(pt.Transform(pen.aff)) }
func (pen *TransformPen) LineTo(pt Point) error { return pen.out.LineTo(pt.Transform(pen.aff)) }

func (pen *TransformPen) CurveTo(pts ...Point) error  { return pen.out.CurveTo(pen.points(pts)...) }
func (pen *TransformPen) QCurveTo(pts ...Point) error { return pen.out.QCurveTo(pen.points(pts)...) }

func (pen *TransformPen) ClosePath() error { return pen.out.ClosePath() }
func (pen *TransformPen) EndPath() error   { return pen.out.EndPath() }

func (pen *TransformPen) AddComponent(name string, transform Affine) error {
	return pen.out.AddComponent(name, pen.aff.Mul(transform))
}
