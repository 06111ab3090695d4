package cu2qu

import (
	"errors"
	"testing"
)

func newMultiPen(t *testing.T, masters int, opts Options) (*Cu2QuMultiPen, []*RecordingPen) {
	t.Helper()
	recs := make([]*RecordingPen, masters)
	outs := make([]Pen, masters)
	for i := range recs {
		recs[i] = new(RecordingPen)
		outs[i] = recs[i]
	}
	pen, err := NewMultiPen(outs, opts)
	if err != nil {
		t.Fatal(err)
	}
	return pen, recs
}

func TestMultiPenCurveTo(t *testing.T) {
	pen, recs := newMultiPen(t, 2, Options{MaxErr: 1})
	diff(t, 2, pen.Masters())
	must(t, pen.MoveTo([]Point{Pt(0, 0), Pt(0, 0)}))
	must(t, pen.CurveTo([][]Point{
		{Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{Pt(2, 2), Pt(4, 4), Pt(6, 6)},
	}))
	must(t, pen.LineTo([]Point{Pt(3, 0), Pt(6, 0)}))
	must(t, pen.ClosePath())

	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.qCurveTo((0.75, 0.75), (2.25, 2.25), (3, 3))\n"+
		"pen.lineTo((3, 0))\n"+
		"pen.closePath()\n", recs[0].String())
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.qCurveTo((1.5, 1.5), (4.5, 4.5), (6, 6))\n"+
		"pen.lineTo((6, 0))\n"+
		"pen.closePath()\n", recs[1].String())
}

func TestMultiPenCompatibleSegmentCounts(t *testing.T) {
	stats := new(Stats)
	pen, recs := newMultiPen(t, 2, Options{MaxErr: 1, Stats: stats})
	must(t, pen.MoveTo([]Point{Pt(0, 0), c1.P0}))
	must(t, pen.CurveTo([][]Point{
		{Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{c1.P1, c1.P2, c1.P3},
	}))
	must(t, pen.EndPath())

	a, b := recs[0].Calls[1], recs[1].Calls[1]
	diff(t, OpQCurveTo, a.Op)
	diff(t, OpQCurveTo, b.Op)
	if len(a.Points) != len(b.Points) {
		t.Errorf("got %d and %d points, want the same", len(a.Points), len(b.Points))
	}
	// The straight curve alone would get two segments.
	if len(a.Points) < 4 {
		t.Errorf("got %d points, want the segment count of the harder curve", len(a.Points))
	}
	diff(t, 1, stats.Total())
}

func TestMultiPenTolerances(t *testing.T) {
	loose, loosePens := newMultiPen(t, 2, Options{MaxErrs: []float64{1, 1000}})
	tight, tightPens := newMultiPen(t, 2, Options{MaxErrs: []float64{1, 1}})
	flat := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Raise()
	for _, pen := range []*Cu2QuMultiPen{loose, tight} {
		must(t, pen.MoveTo([]Point{flat.P0, c1.P0}))
		must(t, pen.CurveTo([][]Point{
			{flat.P1, flat.P2, flat.P3},
			{c1.P1, c1.P2, c1.P3},
		}))
		must(t, pen.EndPath())
	}
	if n, m := len(loosePens[1].Calls[1].Points), len(tightPens[1].Calls[1].Points); n >= m {
		t.Errorf("loose tolerance produced %d points, tight %d", n, m)
	}
}

func TestMultiPenSuperBezier(t *testing.T) {
	pen, recs := newMultiPen(t, 2, Options{MaxErr: 1})
	must(t, pen.MoveTo([]Point{Pt(0, 0), Pt(0, 0)}))
	must(t, pen.CurveTo([][]Point{
		{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)},
		{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)},
	}))
	must(t, pen.ClosePath())
	for _, rec := range recs {
		diff(t, ""+
			"pen.moveTo((0, 0))\n"+
			"pen.qCurveTo((0.75, 0.75), (1.625, 1.625), (2, 2))\n"+
			"pen.qCurveTo((2.375, 2.375), (3.25, 3.25), (4, 4))\n"+
			"pen.closePath()\n", rec.String())
	}
}

func TestMultiPenRetainCubics(t *testing.T) {
	pen, recs := newMultiPen(t, 1, Options{MaxErr: 5, RetainCubics: true})
	must(t, pen.MoveTo([]Point{c1.P0}))
	must(t, pen.CurveTo([][]Point{{c1.P1, c1.P2, c1.P3}}))
	must(t, pen.EndPath())
	diff(t, []PenCall{
		call(OpMoveTo, c1.P0),
		call(OpCurveTo, c1.P1, c1.P2, c1.P3),
		call(OpEndPath),
	}, recs[0].Calls)
}

func TestMultiPenReverseDirection(t *testing.T) {
	pen, recs := newMultiPen(t, 2, Options{MaxErr: 1, ReverseDirection: true})
	must(t, pen.MoveTo([]Point{Pt(0, 0), Pt(0, 0)}))
	must(t, pen.LineTo([]Point{Pt(10, 0), Pt(0, 0)}))
	must(t, pen.LineTo([]Point{Pt(10, 10), Pt(20, 20)}))
	must(t, pen.ClosePath())

	// The second master starts with a line of zero length, which becomes
	// its closing line. Closing lines are explicit for every master.
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.lineTo((10, 10))\n"+
		"pen.lineTo((10, 0))\n"+
		"pen.lineTo((0, 0))\n"+
		"pen.closePath()\n", recs[0].String())
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.lineTo((20, 20))\n"+
		"pen.lineTo((0, 0))\n"+
		"pen.lineTo((0, 0))\n"+
		"pen.closePath()\n", recs[1].String())
}

func TestMultiPenIgnoreSinglePoints(t *testing.T) {
	pen, recs := newMultiPen(t, 2, Options{MaxErr: 1, IgnoreSinglePoints: true})
	transforms := []Affine{Identity, Scale(2, 2)}
	must(t, pen.MoveTo([]Point{Pt(0, 0), Pt(1, 1)}))
	must(t, pen.EndPath())
	must(t, pen.AddComponent("a", transforms))
	for i, rec := range recs {
		diff(t, []PenCall{{Op: OpAddComponent, Name: "a", Transform: transforms[i]}}, rec.Calls)
	}
}

func TestMultiPenErrors(t *testing.T) {
	if _, err := NewMultiPen(nil, Options{}); !errors.Is(err, ErrMasterCount) {
		t.Errorf("got error %v, want %v", err, ErrMasterCount)
	}
	if _, err := NewMultiPen([]Pen{new(RecordingPen)}, Options{MaxErrs: []float64{1, 2}}); !errors.Is(err, ErrMasterCount) {
		t.Errorf("got error %v, want %v", err, ErrMasterCount)
	}

	pen, _ := newMultiPen(t, 2, Options{MaxErr: 1})
	if err := pen.MoveTo([]Point{Pt(0, 0)}); !errors.Is(err, ErrMasterCount) {
		t.Errorf("got error %v, want %v", err, ErrMasterCount)
	}
	if err := pen.LineTo([]Point{Pt(0, 0), Pt(0, 0)}); !errors.Is(err, ErrNoContour) {
		t.Errorf("got error %v, want %v", err, ErrNoContour)
	}
	must(t, pen.MoveTo([]Point{Pt(0, 0), Pt(0, 0)}))
	err := pen.CurveTo([][]Point{
		{Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{Pt(1, 1), Pt(3, 3)},
	})
	if !errors.Is(err, ErrPointCount) {
		t.Errorf("got error %v, want %v", err, ErrPointCount)
	}
	if err := pen.QCurveTo([][]Point{{}, {}}); !errors.Is(err, ErrPointCount) {
		t.Errorf("got error %v, want %v", err, ErrPointCount)
	}
	if err := pen.AddComponent("a", []Affine{Identity, Identity}); !errors.Is(err, ErrContourOpen) {
		t.Errorf("got error %v, want %v", err, ErrContourOpen)
	}
}
