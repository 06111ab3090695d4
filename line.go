package cu2qu

// InfiniteLine represents a line through two points. For intersection
// purposes it is treated as extending to infinity in both directions.
type InfiniteLine struct {
	P0 Point
	P1 Point
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines, including lines whose
// direction is the zero vector.
func (l InfiniteLine) CrossingPoint(o InfiniteLine) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// SignedArea returns the line's contribution to the signed area of a
// closed path.
func (l InfiniteLine) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}
