package anchors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// circlePreset is a unit-circle Bézier control polygon that approximates an arc of
// MaxAngle radians, starting at (1, 0) and sweeping towards positive y.
type circlePreset struct {
	MaxAngle float64
	Points   []Point
}

// circlePresets is ordered by increasing MaxAngle. It is never modified after
// initialization.
var circlePresets = []circlePreset{
	{
		MaxAngle: 0.4993379862754501,
		Points:   mustParsePoints("1.0:0.0|1.0:0.2549893626632736|0.8778997558480327:0.47884446188920726"),
	},
	{
		MaxAngle: 1.7579419829169447,
		Points:   mustParsePoints("1.0:0.0|1.0:0.6263026|0.42931178:1.0990661|-0.18605515:0.9825393"),
	},
	{
		MaxAngle: 3.1385246920140215,
		Points:   mustParsePoints("1.0:0.0|1.0:0.87084764|0.002304826:1.5033062|-0.9973236:0.8739115|-0.9999953:0.0030679568"),
	},
	{
		MaxAngle: 5.69720464620727,
		Points:   mustParsePoints("1.0:0.0|1.0:1.4137783|-1.4305235:2.0779421|-2.3410065:-0.94017583|0.05132711:-1.7309346|0.8331702:-0.5530167"),
	},
	{
		MaxAngle: 2 * math.Pi,
		Points:   mustParsePoints("1.0:0.0|1.0:1.2447058|-0.8526471:2.118367|-2.6211002:7.854936e-06|-0.8526448:-2.118357|1.0:-1.2447058|1.0:0.0"),
	},
}

// presetFor returns the index of the smallest preset that covers sweep radians. Sweeps
// larger than every preset get the full circle.
func presetFor(sweep float64) int {
	for i, p := range circlePresets {
		if p.MaxAngle >= sweep {
			return i
		}
	}
	return len(circlePresets) - 1
}

// ParsePoints parses a list of points in the form "x:y|x:y|...". Whitespace around
// coordinates is ignored. Errors wrap [ErrSyntax].
func ParsePoints(s string) ([]Point, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty point list", ErrSyntax)
	}
	fields := strings.Split(s, "|")
	pts := make([]Point, 0, len(fields))
	for _, f := range fields {
		pt, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q is not of the form x:y", ErrSyntax, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad x coordinate in %q: %w", ErrSyntax, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad y coordinate in %q: %w", ErrSyntax, s, err)
	}
	return Pt(x, y), nil
}

func mustParsePoints(s string) []Point {
	pts, err := ParsePoints(s)
	if err != nil {
		panic(err)
	}
	return pts
}

// formatPoints is the inverse of ParsePoints.
func formatPoints(pts []Point) string {
	var sb strings.Builder
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
	}
	return sb.String()
}
