// Package cu2qu converts cubic Bézier curves to quadratic B-splines, as
// needed to turn PostScript-flavored font outlines into TrueType ones.
//
// # Approximation
//
// A cubic is approximated by a quadratic B-spline with the same end points
// and end tangents. The spline is built for an increasing number of
// segments, starting at one, until its deviation from the cubic is within a
// given tolerance. See [CubicBez.ApproxSpline] for the construction,
// [CubicBez.Deviation] for how the error is measured, and [Convert] for the
// search.
//
// When several masters of a font are to be interpolated, the same curve in
// every master has to be approximated with the same number of segments.
// [CurveGroup] holds such a set of curves, and converting it finds the
// smallest segment count that is good enough for all members.
//
// The search is bounded by [Options.MaxN]. If no segment count up to that
// bound meets the tolerance, the result at the bound is used anyway;
// [Conversion.Converged] and [Conversion.Errors] tell the caller.
//
// # Pens
//
// Outlines are passed around as calls on pens, following the segment
// protocol of [Pen] and the point protocol of [PointPen]. [Cu2QuPen],
// [Cu2QuPointPen] and [Cu2QuMultiPen] are filters that convert curves on
// their way to another pen, optionally reversing the direction of contours.
// [GlyphsToQuadratic] and [ConvertGlyphs] convert sets of compatible
// glyphs.
//
// [PointToSegmentPen] and [SegmentToPointPen] translate between the two
// protocols, and [RecordingPen] and [BezPathPen] turn pen calls into data.
// The subpackages connect pens to font parsers and rasterizers.
//
// # Quadratic B-splines
//
// Splines use the implied on-curve encoding of TrueType: all points but the
// first and last are off-curve, and an on-curve point lies halfway between
// every two consecutive off-curve points. See [QuadBSpline].
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged unless a logger is
// installed with [SetLogger].
package cu2qu
