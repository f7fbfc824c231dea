package anchors

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// PathElementKind identifies the drawing command of a [PathElement].
type PathElementKind int

const (
	// Start a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// A line to P0.
	LineToKind
	// A quadratic Bézier with control point P0, ending at P1.
	QuadToKind
	// A cubic Bézier with control points P0 and P1, ending at P2.
	CubicToKind
)

// PathElement is a drawing command of a [BezPath]. The command starts at the end point
// of the previous element.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

// EndPoint returns the point the element ends at.
func (el PathElement) EndPoint() Point {
	switch el.Kind {
	case QuadToKind:
		return el.P1
	case CubicToKind:
		return el.P2
	default:
		return el.P0
	}
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func QuadTo(p1, p2 Point) PathElement { return PathElement{Kind: QuadToKind, P0: p1, P1: p2} }
func CubicTo(p1, p2, p3 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3}
}

// BezPath is a path made of lines and quadratic and cubic Béziers, in the drawing
// command form graphics APIs consume.
type BezPath []PathElement

// NewBezPath builds a path from a flattened anchor sequence, such as the output of
// [Convert]. Pieces of degree 1, 2 and 3 map to lines, quadratic and cubic Béziers;
// pieces of higher degree are flattened to lines that stay within tolerance of the
// curve.
func NewBezPath(anchors []Point, tolerance float64) BezPath {
	var p BezPath
	for b := range Pieces(anchors) {
		if len(p) == 0 || p[len(p)-1].EndPoint() != b[0] {
			p.MoveTo(b[0])
		}
		switch b.Degree() {
		case 0:
		case 1:
			p.LineTo(b[1])
		case 2:
			p.QuadTo(b[1], b[2])
		case 3:
			p.CubicTo(b[1], b[2], b[3])
		default:
			for _, pt := range b.Flatten(tolerance) {
				p.LineTo(pt)
			}
		}
	}
	return p
}

// flattenCount returns the number of equal parameter steps needed for the chords of b
// to stay within tolerance of it. The bound is d(d−1)/8 · max‖Δ²P‖ / n².
func flattenCount(b Bezier, tolerance float64) int {
	d := float64(b.Degree())
	var dd float64
	for i := 2; i < len(b); i++ {
		v := Vec2(b[i]).Sub(Vec2(b[i-1]).Mul(2)).Add(Vec2(b[i-2]))
		dd = max(dd, v.Hypot())
	}
	if tolerance <= 0 || dd == 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(d * (d - 1) * dd / (8 * tolerance)))
	return max(int(n), 1)
}

// MoveTo appends a [MoveTo] element.
func (p *BezPath) MoveTo(pt Point) { *p = append(*p, MoveTo(pt)) }

// LineTo appends a [LineTo] element.
func (p *BezPath) LineTo(pt Point) { *p = append(*p, LineTo(pt)) }

// QuadTo appends a [QuadTo] element.
func (p *BezPath) QuadTo(p1, p2 Point) { *p = append(*p, QuadTo(p1, p2)) }

// CubicTo appends a [CubicTo] element.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { *p = append(*p, CubicTo(p1, p2, p3)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// ControlBox returns the smallest rectangle containing all points of the path,
// including control points. It returns the zero Rect for an empty path.
func (p BezPath) ControlBox() Rect {
	var pts []Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			pts = append(pts, el.P0)
		case QuadToKind:
			pts = append(pts, el.P0, el.P1)
		case CubicToKind:
			pts = append(pts, el.P0, el.P1, el.P2)
		}
	}
	return ControlBox(pts)
}
