package cu2qu

import (
	"errors"
	"testing"
)

// glyph returns a drawer for a closed contour with one curve, scaled by s,
// followed by the given extra drawing.
func glyph(s float64, extra func(pen Pen) error) Drawer {
	return DrawerFunc(func(pen Pen) error {
		if err := pen.MoveTo(Pt(0, 0)); err != nil {
			return err
		}
		if err := pen.CurveTo(Pt(s, s), Pt(2*s, 2*s), Pt(3*s, 3*s)); err != nil {
			return err
		}
		if err := pen.LineTo(Pt(3*s, 0)); err != nil {
			return err
		}
		if err := pen.ClosePath(); err != nil {
			return err
		}
		if extra != nil {
			return extra(pen)
		}
		return nil
	})
}

func recordingPens(n int) ([]Pen, []*RecordingPen) {
	pens := make([]Pen, n)
	recs := make([]*RecordingPen, n)
	for i := range pens {
		recs[i] = new(RecordingPen)
		pens[i] = recs[i]
	}
	return pens, recs
}

func TestGlyphsToQuadratic(t *testing.T) {
	component := func(pen Pen) error { return pen.AddComponent("acute", Translate(Vec(10, 0))) }
	outs, recs := recordingPens(2)
	err := GlyphsToQuadratic([]Drawer{glyph(1, component), glyph(2, component)}, outs, Options{MaxErr: 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.qCurveTo((0.75, 0.75), (2.25, 2.25), (3, 3))\n"+
		"pen.lineTo((3, 0))\n"+
		"pen.closePath()\n"+
		"pen.addComponent('acute', (1, 0, 0, 1, 10, 0))\n", recs[0].String())
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.qCurveTo((1.5, 1.5), (4.5, 4.5), (6, 6))\n"+
		"pen.lineTo((6, 0))\n"+
		"pen.closePath()\n"+
		"pen.addComponent('acute', (1, 0, 0, 1, 10, 0))\n", recs[1].String())
}

func TestGlyphsToQuadraticIncompatible(t *testing.T) {
	line := DrawerFunc(func(pen Pen) error {
		must(t, pen.MoveTo(Pt(0, 0)))
		must(t, pen.LineTo(Pt(3, 3)))
		must(t, pen.LineTo(Pt(3, 0)))
		return pen.ClosePath()
	})
	extraContour := func(pen Pen) error {
		must(t, pen.MoveTo(Pt(0, 0)))
		must(t, pen.LineTo(Pt(1, 1)))
		return pen.EndPath()
	}
	tests := []struct {
		name   string
		glyphs []Drawer
		want   IncompatibleError
	}{
		{
			"segment type",
			[]Drawer{glyph(1, nil), glyph(1, nil), line},
			IncompatibleError{Master: 2, Index: 1, Reason: "lineTo, want curveTo"},
		},
		{
			"point count",
			[]Drawer{glyph(1, nil), DrawerFunc(func(pen Pen) error {
				must(t, pen.MoveTo(Pt(0, 0)))
				must(t, pen.CurveTo(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)))
				must(t, pen.LineTo(Pt(3, 0)))
				return pen.ClosePath()
			})},
			IncompatibleError{Master: 1, Index: 1, Reason: "curveTo with 4 points, want 3"},
		},
		{
			"component name",
			[]Drawer{
				glyph(1, func(pen Pen) error { return pen.AddComponent("a", Identity) }),
				glyph(1, func(pen Pen) error { return pen.AddComponent("b", Identity) }),
			},
			IncompatibleError{Master: 1, Index: 4, Reason: `component "b", want "a"`},
		},
		{
			"length",
			[]Drawer{glyph(1, nil), glyph(1, extraContour)},
			IncompatibleError{Master: 1, Index: 4, Reason: "7 segments, want 4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outs, recs := recordingPens(len(tt.glyphs))
			err := GlyphsToQuadratic(tt.glyphs, outs, Options{MaxErr: 1})
			var ierr *IncompatibleError
			if !errors.As(err, &ierr) {
				t.Fatalf("got error %v, want *IncompatibleError", err)
			}
			diff(t, tt.want, *ierr)
			for i, rec := range recs {
				if len(rec.Calls) != 0 {
					t.Errorf("master %d was drawn despite error", i)
				}
			}
		})
	}
}

func TestGlyphsToQuadraticIgnoreSinglePoints(t *testing.T) {
	anchor := func(pen Pen) error {
		must(t, pen.MoveTo(Pt(100, 700)))
		return pen.ClosePath()
	}
	glyphs := []Drawer{glyph(1, anchor), glyph(2, nil)}

	outs, _ := recordingPens(2)
	var ierr *IncompatibleError
	if err := GlyphsToQuadratic(glyphs, outs, Options{MaxErr: 1}); !errors.As(err, &ierr) {
		t.Fatalf("got error %v, want *IncompatibleError", err)
	}

	outs, recs := recordingPens(2)
	if err := GlyphsToQuadratic(glyphs, outs, Options{MaxErr: 1, IgnoreSinglePoints: true}); err != nil {
		t.Fatal(err)
	}
	diff(t, len(recs[0].Calls), len(recs[1].Calls))
	diff(t, 4, len(recs[0].Calls))
}

func TestGlyphsToQuadraticMasterCount(t *testing.T) {
	outs, _ := recordingPens(1)
	err := GlyphsToQuadratic([]Drawer{glyph(1, nil), glyph(2, nil)}, outs, Options{MaxErr: 1})
	if !errors.Is(err, ErrMasterCount) {
		t.Errorf("got error %v, want %v", err, ErrMasterCount)
	}
	if err := GlyphsToQuadratic(nil, nil, Options{}); err != nil {
		t.Errorf("got error %v for no masters", err)
	}
}

func TestGlyphsToQuadraticDrawError(t *testing.T) {
	boom := errors.New("boom")
	outs, _ := recordingPens(2)
	err := GlyphsToQuadratic([]Drawer{glyph(1, nil), DrawerFunc(func(Pen) error { return boom })}, outs, Options{MaxErr: 1})
	if !errors.Is(err, boom) {
		t.Errorf("got error %v, want %v", err, boom)
	}
}

func TestGlyphsToQuadraticReverse(t *testing.T) {
	outs, recs := recordingPens(2)
	err := GlyphsToQuadratic([]Drawer{glyph(1, nil), glyph(2, nil)}, outs, Options{MaxErr: 1, ReverseDirection: true})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, ""+
		"pen.moveTo((0, 0))\n"+
		"pen.lineTo((3, 0))\n"+
		"pen.lineTo((3, 3))\n"+
		"pen.qCurveTo((2.25, 2.25), (0.75, 0.75), (0, 0))\n"+
		"pen.closePath()\n", recs[0].String())
	diff(t, len(recs[0].Calls), len(recs[1].Calls))
}
