package cu2qu

import (
	"fmt"
	"slices"
)

// Approximable is a curve, or a group of curves, that [Convert] can turn into
// quadratic splines. It is implemented by [CubicBez] for a single curve and
// by [CurveGroup] for curves that must be converted compatibly.
type Approximable interface {
	members() []CubicBez
	tolerance(i int, def float64) float64
}

func (c CubicBez) members() []CubicBez                 { return []CubicBez{c} }
func (c CubicBez) tolerance(_ int, def float64) float64 { return def }

// CurveGroup is a set of cubics, one per master, that denote the same curve
// at different interpolation locations. Converting a group yields splines
// with the same number of segments for every member.
type CurveGroup struct {
	curves     []CubicBez
	tolerances []float64
}

// NewCurveGroup returns a group of the given curves. It returns
// ErrEmptyGroup if curves is empty.
func NewCurveGroup(curves ...CubicBez) (CurveGroup, error) {
	if len(curves) == 0 {
		return CurveGroup{}, ErrEmptyGroup
	}
	return CurveGroup{curves: slices.Clone(curves)}, nil
}

// WithTolerances returns a copy of g that uses a separate tolerance for each
// member, instead of the one passed to [Convert]. There must be exactly one
// tolerance per member.
func (g CurveGroup) WithTolerances(maxErrs ...float64) (CurveGroup, error) {
	if len(maxErrs) != len(g.curves) {
		return CurveGroup{}, fmt.Errorf("%d tolerances for %d curves: %w", len(maxErrs), len(g.curves), ErrMasterCount)
	}
	g.tolerances = slices.Clone(maxErrs)
	return g, nil
}

// Len returns the number of members.
func (g CurveGroup) Len() int { return len(g.curves) }

// Curves returns the members of the group.
func (g CurveGroup) Curves() []CubicBez { return slices.Clone(g.curves) }

func (g CurveGroup) members() []CubicBez { return g.curves }

func (g CurveGroup) tolerance(i int, def float64) float64 {
	if g.tolerances == nil {
		return def
	}
	return g.tolerances[i]
}

// Conversion is the result of converting an [Approximable]. It holds one
// entry per member, in member order.
type Conversion struct {
	// N is the number of quadratic segments in each spline.
	N int
	// Splines holds the quadratic splines, each of N+2 points.
	Splines []QuadBSpline
	// Cubics holds the unmodified input instead of Splines when
	// Options.RetainCubics kept the curves cubic.
	Cubics []CubicBez
	// Errors holds the sampled deviation of each spline from its cubic.
	Errors []float64
	// Converged reports whether every error is within tolerance. When false,
	// the splines are the best effort at the maximum segment count.
	Converged bool
}

// Retained reports whether the curves were kept as cubics.
func (cv Conversion) Retained() bool { return cv.Cubics != nil }

// MaxError returns the largest error of all members.
func (cv Conversion) MaxError() float64 {
	var e float64
	for _, err := range cv.Errors {
		e = max(e, err)
	}
	return e
}

// Convert approximates every member of a with a quadratic spline. It tries
// increasing segment counts, starting at one, and accepts the first count at
// which every member can be approximated with an error no larger than its
// tolerance (opts.MaxErr, unless a [CurveGroup] carries its own).
//
// If no count up to opts.MaxN is good enough, the splines computed at
// opts.MaxN are returned with Converged set to false. Convert never fails.
// If opts.Stats is set, the resulting segment count is recorded once.
func Convert(a Approximable, opts Options) Conversion {
	curves := a.members()
	maxN := opts.maxN()

	var cv Conversion
	for n := 1; n <= maxN || cv.N == 0; n++ {
		if n == 2 && opts.RetainCubics {
			cv = Conversion{
				N:         2,
				Cubics:    slices.Clone(curves),
				Errors:    make([]float64, len(curves)),
				Converged: true,
			}
			break
		}
		splines, ok := approxAll(curves, n)
		if !ok {
			continue
		}
		cv = Conversion{N: n, Splines: splines, Errors: make([]float64, len(curves)), Converged: true}
		for i, c := range curves {
			cv.Errors[i] = c.Deviation(splines[i])
			if !(cv.Errors[i] <= a.tolerance(i, opts.MaxErr)) {
				cv.Converged = false
			}
		}
		if cv.Converged {
			break
		}
	}

	if !cv.Converged {
		Logger().Warn("curve approximation exceeds tolerance",
			"n", cv.N, "err", cv.MaxError(), "max_err", opts.MaxErr, "curves", len(curves))
	}
	opts.Stats.Add(cv.N)
	return cv
}

// approxAll approximates every curve with n segments. It fails if any of
// the curves can't be approximated.
func approxAll(curves []CubicBez, n int) ([]QuadBSpline, bool) {
	splines := make([]QuadBSpline, len(curves))
	for i, c := range curves {
		spline, ok := c.ApproxSpline(n)
		if !ok {
			return nil, false
		}
		splines[i] = spline
	}
	return splines, true
}
