package cu2qu

import (
	"fmt"
	"math"
)

// Point is a position in outline coordinates, usually font units.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats the point the way outline dumps print coordinates, as in
// "(0.75, 2.25)".
func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point { return Point{X: pt.X + o.X, Y: pt.Y + o.Y} }

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y} }

// Lerp linearly interpolates between two points. t may lie outside [0, 1],
// which extrapolates along the line through both points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X*(1-t) + o.X*t,
		Y: pt.Y*(1-t) + o.Y*t,
	}
}

// Midpoint returns the point halfway between pt and o. Implied on-curve
// points of quadratic splines are computed with it.
func (pt Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (pt.X + o.X), Y: 0.5 * (pt.Y + o.Y)}
}

// Distance returns the Euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 { return math.Hypot(pt.X-o.X, pt.Y-o.Y) }
