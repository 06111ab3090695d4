package cu2qu

import "fmt"

// Drawer is an outline source, such as a glyph, that can draw itself into
// a [Pen].
type Drawer interface {
	Draw(pen Pen) error
}

// DrawerFunc adapts a function to the [Drawer] interface.
type DrawerFunc func(pen Pen) error

func (fn DrawerFunc) Draw(pen Pen) error { return fn(pen) }

// GlyphsToQuadratic converts the outlines of the masters of one glyph to
// quadratic splines, drawing master i into outs[i]. Curves at the same
// position in every master are converted together, so the results stay
// compatible for interpolation.
//
// The masters must have the same structure: the same sequence of pen calls,
// with the same number of points per curve and the same component names.
// If they don't, nothing is drawn and an [*IncompatibleError] identifies the
// first difference. With opts.IgnoreSinglePoints, contours consisting of a
// lone moveTo, such as anchors, are left out before comparing.
func GlyphsToQuadratic(glyphs []Drawer, outs []Pen, opts Options) error {
	if len(glyphs) != len(outs) {
		return countError("GlyphsToQuadratic", ErrMasterCount, len(outs))
	}
	if len(glyphs) == 0 {
		return nil
	}

	recs := make([][]PenCall, len(glyphs))
	for i, g := range glyphs {
		var rec RecordingPen
		if err := g.Draw(&rec); err != nil {
			return fmt.Errorf("drawing master %d: %w", i, err)
		}
		recs[i] = rec.Calls
		if opts.IgnoreSinglePoints {
			recs[i] = dropSinglePoints(recs[i])
		}
	}
	if err := checkCompatible(recs); err != nil {
		return err
	}

	Logger().Debug("converting glyph masters", "masters", len(glyphs), "calls", len(recs[0]))

	pen, err := NewMultiPen(outs, opts)
	if err != nil {
		return err
	}
	for j := range recs[0] {
		if err := replayMulti(pen, recs, j); err != nil {
			return fmt.Errorf("segment %d: %w", j, err)
		}
	}
	return nil
}

// dropSinglePoints removes contours that consist of nothing but a moveTo.
func dropSinglePoints(calls []PenCall) []PenCall {
	out := calls[:0:0]
	for i := 0; i < len(calls); i++ {
		c := calls[i]
		if c.Op == OpMoveTo && i+1 < len(calls) {
			if next := calls[i+1].Op; next == OpClosePath || next == OpEndPath {
				i++
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func checkCompatible(recs [][]PenCall) error {
	ref := recs[0]
	for m, calls := range recs[1:] {
		m++
		for j := range min(len(ref), len(calls)) {
			a, b := ref[j], calls[j]
			switch {
			case a.Op != b.Op:
				return &IncompatibleError{Master: m, Index: j, Reason: fmt.Sprintf("%s, want %s", b.Op, a.Op)}
			case len(a.Points) != len(b.Points):
				return &IncompatibleError{Master: m, Index: j, Reason: fmt.Sprintf("%s with %d points, want %d", b.Op, len(b.Points), len(a.Points))}
			case a.Name != b.Name:
				return &IncompatibleError{Master: m, Index: j, Reason: fmt.Sprintf("component %q, want %q", b.Name, a.Name)}
			}
		}
		if len(calls) != len(ref) {
			return &IncompatibleError{
				Master: m,
				Index:  min(len(ref), len(calls)),
				Reason: fmt.Sprintf("%d segments, want %d", len(calls), len(ref)),
			}
		}
	}
	return nil
}

// replayMulti replays call j of every recording as one multi-pen call.
func replayMulti(pen MultiPen, recs [][]PenCall, j int) error {
	pts := make([][]Point, len(recs))
	firsts := make([]Point, len(recs))
	for i, calls := range recs {
		pts[i] = calls[j].Points
		if len(pts[i]) > 0 {
			firsts[i] = pts[i][0]
		}
	}
	switch c := recs[0][j]; c.Op {
	case OpMoveTo:
		return pen.MoveTo(firsts)
	case OpLineTo:
		return pen.LineTo(firsts)
	case OpCurveTo:
		return pen.CurveTo(pts)
	case OpQCurveTo:
		return pen.QCurveTo(pts)
	case OpClosePath:
		return pen.ClosePath()
	case OpEndPath:
		return pen.EndPath()
	case OpAddComponent:
		transforms := make([]Affine, len(recs))
		for i, calls := range recs {
			transforms[i] = calls[j].Transform
		}
		return pen.AddComponent(c.Name, transforms)
	default:
		return fmt.Errorf("unexpected %s", c.Op)
	}
}
