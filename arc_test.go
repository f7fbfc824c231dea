package anchors

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// maxRadialError returns the largest deviation of the Bézier curve with the given
// control polygon from the circle, sampled at n+1 parameter values.
func maxRadialError(ctrl []Point, c Circle, n int) float64 {
	var worst float64
	for i := range n + 1 {
		p := Bezier(ctrl).Eval(float64(i) / float64(n))
		worst = max(worst, math.Abs(p.Distance(c.Center)-c.Radius))
	}
	return worst
}

func TestCircleAnchorsQuarter(t *testing.T) {
	s := math.Sqrt2 / 2
	in := []Point{Pt(1, 0), Pt(s, s), Pt(0, 1)}
	out, fit := CircleAnchorsOpt(in, DefaultArcOptions)
	if !fit.Valid || !fit.Converged {
		t.Fatalf("got fit %+v, want a valid, converged fit", fit)
	}
	if fit.Preset != 1 {
		t.Errorf("got preset %d, want 1", fit.Preset)
	}
	if len(out) != 4 {
		t.Fatalf("got %d anchors, want 4", len(out))
	}
	if out[0] != in[0] || out[len(out)-1] != in[2] {
		t.Errorf("end points %v and %v differ from input", out[0], out[len(out)-1])
	}
	if err := maxRadialError(out, Circle{Pt(0, 0), 1}, 100); err > 1e-3 {
		t.Errorf("got radial error %g, want at most 1e-3", err)
	}
	// The curve must bulge towards b, not away from it.
	if d := Bezier(out).Eval(0.5).Distance(in[1]); d > 1e-2 {
		t.Errorf("curve midpoint is %g away from the arc's midpoint", d)
	}
}

func TestCircleAnchorsScaledAndClockwise(t *testing.T) {
	tests := [][]Point{
		{Pt(10, 10), Pt(60, 20), Pt(80, 80)},
		{Pt(80, 80), Pt(60, 20), Pt(10, 10)},
		{Pt(1, 0), Pt(0, -1), Pt(0, 1)},
		{Pt(0, 0), Pt(1, 0), Pt(1, 1)},
		{Pt(1, 0), Pt(-1, 0.001), Pt(1, 0.001)},
	}
	for _, in := range tests {
		out, fit := CircleAnchorsOpt(in, DefaultArcOptions)
		if !fit.Valid || !fit.Converged {
			t.Errorf("%v: got fit %+v, want a valid, converged fit", in, fit)
			continue
		}
		c := fit.Arc.Circle()
		if err := maxRadialError(out, c, 200); err > 1e-3*c.Radius {
			t.Errorf("%v: got radial error %g for radius %g", in, err, c.Radius)
		}
		// Sample the true arc and check that the curve comes close to each sample.
		for i := range 11 {
			want := fit.Arc.PointAt(float64(i) / 10)
			best := math.Inf(1)
			for j := range 401 {
				best = min(best, Bezier(out).Eval(float64(j)/400).Distance(want))
			}
			if best > 2e-2*c.Radius {
				t.Errorf("%v: curve misses arc point %v by %g", in, want, best)
			}
		}
	}
}

func TestCircleAnchorsHalfCircle(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	out, fit := CircleAnchorsOpt(in, DefaultArcOptions)
	if !fit.Valid {
		t.Fatal("expected a valid arc")
	}
	diff(t, Circle{Pt(0.5, 0.5), math.Sqrt2 / 2}, fit.Arc.Circle(), cmpopts.EquateApprox(0, 1e-12))
	if out[0] != Pt(0, 0) {
		t.Errorf("got first anchor %v, want exactly (0, 0)", out[0])
	}
	if out[len(out)-1] != Pt(1, 1) {
		t.Errorf("got last anchor %v, want exactly (1, 1)", out[len(out)-1])
	}
}

func TestCircleAnchorsDegenerate(t *testing.T) {
	for _, in := range [][]Point{
		{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		{Pt(0, 0), Pt(5, 0), Pt(-3, 0), Pt(7, 7)},
		{Pt(0, 0), Pt(1, 1)},
		{Pt(4, 2)},
	} {
		out, fit := CircleAnchorsOpt(in, DefaultArcOptions)
		if fit.Valid {
			t.Errorf("%v: got valid fit for non-arc", in)
		}
		diff(t, in, out)
		if len(out) > 0 && &out[0] == &in[0] {
			t.Errorf("%v: result aliases input", in)
		}
	}
}

func TestCircleAnchorsMorePoints(t *testing.T) {
	// Only the first three points define the arc, but the last point is kept as the end.
	s := math.Sqrt2 / 2
	in := []Point{Pt(1, 0), Pt(s, s), Pt(0, 1), Pt(0, 1.0001)}
	out := CircleAnchors(in)
	if out[0] != in[0] || out[len(out)-1] != in[3] {
		t.Errorf("got end points %v and %v", out[0], out[len(out)-1])
	}
}

func TestCircleAnchorsIdempotent(t *testing.T) {
	in := []Point{Pt(10, 10), Pt(60, 20), Pt(80, 80)}
	a := CircleAnchors(in)
	b := CircleAnchors(in)
	if !slices.Equal(a, b) {
		t.Errorf("repeated conversion differs: %v vs %v", a, b)
	}
	diff(t, []Point{Pt(10, 10), Pt(60, 20), Pt(80, 80)}, in)
}

func TestReshapeFullCircle(t *testing.T) {
	out, fit := reshapePreset(2*math.Pi, DefaultArcOptions)
	if fit.Preset != len(circlePresets)-1 {
		t.Errorf("got preset %d, want the full circle", fit.Preset)
	}
	if !fit.Converged || fit.Iterations > DefaultArcOptions.MaxIterations {
		t.Errorf("got fit %+v, want convergence within the limit", fit)
	}
	diff(t, circlePresets[len(circlePresets)-1].Points, out)
	if &out[0] == &circlePresets[len(circlePresets)-1].Points[0] {
		t.Error("reshaped polygon aliases the preset table")
	}
}

func TestReshapeExactPreset(t *testing.T) {
	for i, p := range circlePresets {
		_, fit := reshapePreset(p.MaxAngle, DefaultArcOptions)
		if fit.Preset != i || fit.Iterations != 0 || !fit.Converged {
			t.Errorf("preset %d: got fit %+v", i, fit)
		}
	}
}

func TestReshapeConverges(t *testing.T) {
	for _, sweep := range []float64{0.1, 0.5, 1, 2, 3, 3.14, 4, 5.69, 5.7, 6, 6.2, 6.28} {
		out, fit := reshapePreset(sweep, DefaultArcOptions)
		if !fit.Converged {
			t.Errorf("sweep %g: did not converge: %+v", sweep, fit)
			continue
		}
		got := Vec2(out[len(out)-1]).Angle()
		if got < 0 {
			got += 2 * math.Pi
		}
		if d := math.Abs(got - sweep); d > 1e-5 {
			t.Errorf("sweep %g: polygon ends at angle %g", sweep, got)
		}
		if out[0] != Pt(1, 0) {
			t.Errorf("sweep %g: polygon starts at %v, want (1, 0)", sweep, out[0])
		}
	}
}

func TestReshapeIterationLimit(t *testing.T) {
	s := math.Sqrt2 / 2
	in := []Point{Pt(1, 0), Pt(s, s), Pt(0, 1)}
	for limit := 1; limit <= 3; limit++ {
		out, fit := CircleAnchorsOpt(in, ArcOptions{MaxIterations: limit})
		if fit.Converged {
			t.Errorf("limit %d: unexpectedly converged", limit)
		}
		if fit.Iterations != limit {
			t.Errorf("limit %d: got %d iterations", limit, fit.Iterations)
		}
		// The best effort still has exact end points and roughly follows the arc.
		if out[0] != in[0] || out[len(out)-1] != in[2] {
			t.Errorf("limit %d: got end points %v and %v", limit, out[0], out[len(out)-1])
		}
		if err := maxRadialError(out, Circle{Pt(0, 0), 1}, 100); err > 0.1 {
			t.Errorf("limit %d: got radial error %g", limit, err)
		}
	}
}

func TestArcOptionsDefaults(t *testing.T) {
	diff(t, DefaultArcOptions, ArcOptions{}.withDefaults())
	diff(t, ArcOptions{MaxIterations: 3, Tolerance: 0.5}, ArcOptions{MaxIterations: 3, Tolerance: 0.5}.withDefaults())
}
