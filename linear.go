package anchors

// LinearAnchors converts a polyline to Bézier anchors. Every interior vertex is
// doubled, so that each edge becomes its own degree-1 piece. n ≥ 2 points produce
// 2n−2 anchors; a single point is returned as is.
func LinearAnchors(points []Point) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}
	out := make([]Point, 0, 2*len(points)-2)
	out = append(out, points[0])
	for _, pt := range points[1 : len(points)-1] {
		out = append(out, pt, pt)
	}
	return append(out, points[len(points)-1])
}
