package anchors

// CatmullAnchors converts a Catmull-Rom spline through points to Bézier anchors. Each
// span between consecutive points becomes a cubic piece; the end point of every piece
// but the last is doubled to mark the join. n ≥ 2 points produce 4(n−1) anchors; a
// single point is returned as is.
//
// The tangents at the ends of the spline are derived from points extrapolated
// linearly past the first and last point.
func CatmullAnchors(points []Point) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}
	n := len(points)
	out := make([]Point, 0, 4*(n-1))
	out = append(out, points[0])
	for i := range n - 1 {
		v2 := Vec2(points[i])
		v3 := Vec2(points[i+1])
		v1 := v2
		if i > 0 {
			v1 = Vec2(points[i-1])
		}
		var v4 Vec2
		if i < n-2 {
			v4 = Vec2(points[i+2])
		} else {
			v4 = v3.Add(v3).Sub(v2)
		}
		// (-v1 + 6v2 + v3) / 6 and (-v4 + 6v3 + v2) / 6
		c1 := v2.Mul(6).Sub(v1).Add(v3).Div(6)
		c2 := v3.Mul(6).Sub(v4).Add(v2).Div(6)
		out = append(out, Point(c1), Point(c2), Point(v3))
		if i < n-2 {
			out = append(out, Point(v3))
		}
	}
	return out
}
