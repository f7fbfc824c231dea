package anchors

import (
	"log/slog"
	"math"
	"slices"
)

// ArcOptions controls how circle presets are reshaped to a target sweep.
type ArcOptions struct {
	// The maximum number of reshaping rounds. Values ≤ 0 select
	// DefaultArcOptions.MaxIterations.
	MaxIterations int
	// Reshaping stops once the ratio of target sweep to achieved sweep is within
	// Tolerance of 1. Values ≤ 0 select DefaultArcOptions.Tolerance.
	Tolerance float64
}

var DefaultArcOptions = ArcOptions{
	MaxIterations: 64,
	Tolerance:     1e-6,
}

func (opts ArcOptions) withDefaults() ArcOptions {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultArcOptions.MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultArcOptions.Tolerance
	}
	return opts
}

// ArcFit reports how a circular segment was converted.
type ArcFit struct {
	// Whether the points described an arc at all. If false, the points were returned
	// unchanged.
	Valid bool
	// The arc that was approximated. Only meaningful if Valid is set.
	Arc ArcProperties
	// Index of the preset that was reshaped, in order of increasing sweep.
	Preset int
	// Number of reshaping rounds performed.
	Iterations int
	// Whether the reshaped preset reached the target sweep within tolerance. If not,
	// the result is the closest approximation found within the iteration limit.
	Converged bool
}

// CircleAnchors converts a circular segment to Bézier anchors, using
// [DefaultArcOptions]. See [CircleAnchorsOpt].
func CircleAnchors(points []Point) []Point {
	out, _ := CircleAnchorsOpt(points, DefaultArcOptions)
	return out
}

// CircleAnchorsOpt converts a circular segment to the control polygon of a single Bézier
// curve that traces the arc from the first point through the second to the third.
//
// The first and last anchors are exactly the first and last input points; interior
// anchors are approximations. If there are fewer than three points, or the first three
// points are collinear, a copy of points is returned unchanged.
func CircleAnchorsOpt(points []Point, opts ArcOptions) ([]Point, ArcFit) {
	if len(points) < 3 {
		return slices.Clone(points), ArcFit{}
	}
	arc, ok := CircleArcProperties(points[0], points[1], points[2])
	if !ok {
		Logger().Debug("degenerate arc, keeping points",
			slog.Any("a", points[0]), slog.Any("b", points[1]), slog.Any("c", points[2]))
		return slices.Clone(points), ArcFit{}
	}

	out, fit := reshapePreset(arc.SweepAngle, opts.withDefaults())
	fit.Valid = true
	fit.Arc = arc
	if !fit.Converged {
		Logger().Warn("arc did not converge",
			slog.Float64("sweep", arc.SweepAngle),
			slog.Int("preset", fit.Preset),
			slog.Int("iterations", fit.Iterations))
	} else {
		Logger().Debug("arc converted",
			slog.Float64("sweep", arc.SweepAngle),
			slog.Int("preset", fit.Preset),
			slog.Int("iterations", fit.Iterations))
	}

	arc.placement().TransformPoints(out)
	out[0] = points[0]
	out[len(out)-1] = points[len(points)-1]
	return out, fit
}

// reshapePreset returns a copy of the smallest preset covering sweep, truncated so that
// it spans sweep radians of the unit circle.
//
// Each round cuts the polygon at tf = sweep / achieved with de Casteljau's algorithm,
// keeping the part from 0 to tf, and then measures the angle of the polygon's last point.
// Since the preset is only an approximation of a circle, the angle achieved by a cut at
// tf is not exactly tf times the old angle, hence the iteration.
func reshapePreset(sweep float64, opts ArcOptions) ([]Point, ArcFit) {
	idx := presetFor(sweep)
	preset := circlePresets[idx]
	arc := slices.Clone(preset.Points)
	fit := ArcFit{Preset: idx}

	n := len(arc) - 1
	tf := sweep / preset.MaxAngle
	// Written this way so that a NaN tf never counts as converged.
	for !(math.Abs(tf-1) <= opts.Tolerance) {
		if fit.Iterations == opts.MaxIterations {
			return arc, fit
		}
		fit.Iterations++
		for j := range n {
			for i := n; i > j; i-- {
				arc[i] = arc[i-1].Lerp(arc[i], tf)
			}
		}
		achieved := Vec2(arc[n]).Angle()
		if achieved < 0 {
			achieved += 2 * math.Pi
		}
		tf = sweep / achieved
	}
	fit.Converged = true
	return arc, fit
}
