package anchors

import (
	"math"
)

// collinearTolerance is the largest absolute doubled triangle area for which three
// points are considered to lie on one line.
const collinearTolerance = 1e-8

type Circle struct {
	Center Point
	Radius float64
}

// CircumscribedCircle returns the circle passing through a, b and c. It returns false
// if the points are collinear, or too close to collinear for the center to be finite.
func CircumscribedCircle(a, b, c Point) (Circle, bool) {
	if math.Abs(b.Sub(a).Cross(c.Sub(a))) <= collinearTolerance {
		return Circle{}, false
	}
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aSq := Vec2(a).Hypot2()
	bSq := Vec2(b).Hypot2()
	cSq := Vec2(c).Hypot2()
	center := Point{
		X: (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d,
		Y: (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d,
	}
	if center.IsNaN() || center.IsInf() {
		return Circle{}, false
	}
	return Circle{
		Center: center,
		Radius: a.Sub(center).Hypot(),
	}, true
}

// PointAt returns the point on the circle at the given angle.
func (c Circle) PointAt(angle float64) Point {
	return pointOnCircle(c.Center, c.Radius, angle)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// ArcProperties describes the circular arc that starts at one point, passes through a
// second, and ends at a third.
type ArcProperties struct {
	Center Point
	Radius float64
	// The angle of the start point, as seen from Center.
	StartAngle float64
	// The angle swept from start to end, in [0, 2π).
	SweepAngle float64
	// 1 if the arc sweeps towards increasing angles, −1 otherwise.
	Direction float64
}

// CircleArcProperties computes the arc from a through b to c. It returns false, and the
// zero ArcProperties, if the three points are collinear and thus describe no arc.
//
// The sweep is measured from a to c. If b lies on the other side of the chord a–c than
// the short way around, the arc goes the long way around and Direction is −1.
func CircleArcProperties(a, b, c Point) (ArcProperties, bool) {
	circle, ok := CircumscribedCircle(a, b, c)
	if !ok {
		return ArcProperties{}, false
	}

	thetaStart := a.Sub(circle.Center).Angle()
	thetaEnd := c.Sub(circle.Center).Angle()
	for thetaEnd < thetaStart {
		thetaEnd += 2 * math.Pi
	}

	dir := 1.0
	sweep := thetaEnd - thetaStart
	if c.Sub(a).Orthogonal().Dot(b.Sub(a)) < 0 {
		dir = -dir
		sweep = 2*math.Pi - sweep
	}

	return ArcProperties{
		Center:     circle.Center,
		Radius:     circle.Radius,
		StartAngle: thetaStart,
		SweepAngle: sweep,
		Direction:  dir,
	}, true
}

// Circle returns the circle the arc lies on.
func (ap ArcProperties) Circle() Circle {
	return Circle{Center: ap.Center, Radius: ap.Radius}
}

// EndAngle returns the angle of the arc's end point, as seen from the center.
func (ap ArcProperties) EndAngle() float64 {
	return ap.StartAngle + ap.Direction*ap.SweepAngle
}

// PointAt returns the point at fraction t ∈ [0, 1] along the arc.
func (ap ArcProperties) PointAt(t float64) Point {
	return pointOnCircle(ap.Center, ap.Radius, ap.StartAngle+ap.Direction*ap.SweepAngle*t)
}

// placement returns the transform that maps the unit preset, which starts at (1, 0) and
// sweeps towards positive y, onto the arc.
func (ap ArcProperties) placement() Affine {
	aff := Identity
	if ap.Direction < 0 {
		aff = FlipY
	}
	return aff.
		ThenRotate(ap.StartAngle).
		ThenScale(ap.Radius, ap.Radius).
		ThenTranslate(Vec2(ap.Center))
}
