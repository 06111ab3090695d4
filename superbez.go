package cu2qu

// DecomposeSuperBezier splits the points of a super-Bézier curveTo, which
// has more than two off-curve points, into a sequence of ordinary cubic
// segments. The current point is not part of pts: pts holds the off-curve
// points followed by the final on-curve point.
//
// Each returned triple holds the two control points and the end point of
// one cubic; the first cubic starts at the current point and every other
// one starts where the previous one ends. The on-curve points between
// cubics are placed so that the result is G1 continuous.
//
// For three points the result is the single cubic they describe. Fewer
// points yield nil.
func DecomposeSuperBezier(pts []Point) [][3]Point {
	n := len(pts) - 1
	if n < 2 {
		return nil
	}
	var out [][3]Point
	pt1 := pts[0]
	var pt2 option[Point]
	for i := 2; i <= n; i++ {
		nDiv := min(i, 3, n-i+2)
		for j := 1; j < nDiv; j++ {
			f := float64(j) / float64(nDiv)
			a, b := pts[i-2], pts[i-1]
			tmp := Pt(a.X+f*(b.X-a.X), a.Y+f*(b.Y-a.Y))
			if !pt2.isSet {
				pt2.set(tmp)
				continue
			}
			c := pt2.unwrap()
			out = append(out, [3]Point{pt1, c, c.Midpoint(tmp)})
			pt1 = tmp
			pt2.clear()
		}
	}
	return append(out, [3]Point{pt1, pts[n-1], pts[n]})
}
