package cu2qu

// DefaultMaxN is the default maximum number of quadratic segments a single
// cubic may be split into.
const DefaultMaxN = 10

// DefaultMaxErrEm is the default tolerance relative to a font's units per
// em, used by [Options.Tolerance] when neither MaxErr nor MaxErrEm is set.
const DefaultMaxErrEm = 0.001

// Options configures conversions and the pens performing them. The zero
// value converts with a tolerance of zero, which only accepts exact
// approximations; callers normally set MaxErr.
type Options struct {
	// MaxErr is the maximum distance, in outline units, between a cubic and
	// its quadratic approximation.
	MaxErr float64
	// MaxErrEm is the maximum error relative to units per em. It is only
	// consulted by [Options.Tolerance], and only when MaxErr is zero.
	MaxErrEm float64
	// MaxErrs optionally holds one tolerance per master for multi-master
	// conversion. When nil, MaxErr applies to every master.
	MaxErrs []float64
	// MaxN caps the number of segments per spline. Zero means DefaultMaxN.
	MaxN int
	// ReverseDirection reverses the direction of every contour while keeping
	// its starting point.
	ReverseDirection bool
	// Stats, if not nil, counts the number of segments of every spline
	// produced.
	Stats *Stats
	// IgnoreSinglePoints drops contours consisting of a single moveTo.
	IgnoreSinglePoints bool
	// RetainCubics keeps a cubic as is when its approximation would need two
	// quadratic segments, which costs the same number of points. With the
	// default of false, every curve becomes quadratic.
	RetainCubics bool
}

func (opts Options) maxN() int {
	if opts.MaxN <= 0 {
		return DefaultMaxN
	}
	return opts.MaxN
}

// Tolerance returns the absolute tolerance to use for a font with the given
// units per em: MaxErr if set, otherwise MaxErrEm (or DefaultMaxErrEm)
// scaled by unitsPerEm.
func (opts Options) Tolerance(unitsPerEm float64) float64 {
	if opts.MaxErr > 0 {
		return opts.MaxErr
	}
	em := opts.MaxErrEm
	if em <= 0 {
		em = DefaultMaxErrEm
	}
	return em * unitsPerEm
}
