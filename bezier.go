package anchors

import (
	"iter"
	"slices"
)

// Bezier is a Bézier curve of arbitrary degree, given by its control polygon. A curve
// with n points has degree n−1.
type Bezier []Point

// Degree returns the degree of the curve, or -1 for an empty curve.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Eval evaluates the curve at t using de Casteljau's algorithm.
func (b Bezier) Eval(t float64) Point {
	switch len(b) {
	case 0:
		return Point{}
	case 1:
		return b[0]
	case 4:
		return b.Cubic().Eval(t)
	}
	tmp := slices.Clone(b)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := range n {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// Subdivide splits the curve at t into two curves of the same degree.
func (b Bezier) Subdivide(t float64) (Bezier, Bezier) {
	if len(b) == 0 {
		return nil, nil
	}
	n := len(b)
	left := make(Bezier, n)
	right := make(Bezier, n)
	tmp := slices.Clone(b)
	for k := range n {
		left[k] = tmp[0]
		right[n-1-k] = tmp[n-1-k]
		for i := range n - 1 - k {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return left, right
}

// Cubic returns the curve as a [CubicBez]. It is only valid for curves of degree 3.
func (b Bezier) Cubic() CubicBez {
	return CubicBez{b[0], b[1], b[2], b[3]}
}

// Flatten returns points on the curve at equal parameter steps, ending with the curve's
// end point, such that the polyline from the curve's start through them stays within
// tolerance of the curve. It returns nil for curves with fewer than two points.
func (b Bezier) Flatten(tolerance float64) []Point {
	if len(b) < 2 {
		return nil
	}
	n := flattenCount(b, tolerance)
	out := make([]Point, n)
	for i := 1; i < n; i++ {
		out[i-1] = b.Eval(float64(i) / float64(n))
	}
	out[n-1] = b[len(b)-1]
	return out
}

// ControlBox returns the bounding box of the control polygon, which contains the
// curve.
func (b Bezier) ControlBox() Rect {
	return ControlBox(b)
}

// Pieces splits a flattened anchor sequence into the Bézier curves it describes. A
// point that repeats immediately ends one curve and starts the next; a sequence
// without repeats is a single curve.
//
// The yielded curves share memory with anchors.
func Pieces(anchors []Point) iter.Seq[Bezier] {
	return func(yield func(Bezier) bool) {
		if len(anchors) == 0 {
			return
		}
		start := 0
		for i := 1; i < len(anchors); i++ {
			if anchors[i] != anchors[i-1] {
				continue
			}
			if i-start > 1 {
				if !yield(Bezier(anchors[start:i])) {
					return
				}
			}
			start = i
		}
		if len(anchors)-start > 1 || start == 0 {
			yield(Bezier(anchors[start:]))
		}
	}
}
