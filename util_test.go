package cu2qu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})

// recorded draws into a fresh RecordingPen through the pen built by mk and
// returns the recorded calls.
func recorded(t *testing.T, mk func(out Pen) Pen, draw func(pen Pen) error) []PenCall {
	t.Helper()
	var rec RecordingPen
	if err := draw(mk(&rec)); err != nil {
		t.Fatal(err)
	}
	return rec.Calls
}

func call(op PenOp, pts ...Point) PenCall {
	if len(pts) == 0 {
		return PenCall{Op: op}
	}
	return PenCall{Op: op, Points: pts}
}
