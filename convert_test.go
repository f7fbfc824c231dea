package anchors

import (
	"errors"
	"math"
	"testing"
)

func TestLinearAnchors(t *testing.T) {
	for n := 2; n <= 6; n++ {
		in := make([]Point, n)
		for i := range in {
			in[i] = Pt(float64(i), float64(i*i))
		}
		out := LinearAnchors(in)
		if len(out) != 2*n-2 {
			t.Errorf("%d points: got %d anchors, want %d", n, len(out), 2*n-2)
		}
		if out[0] != in[0] || out[len(out)-1] != in[n-1] {
			t.Errorf("%d points: end points %v and %v differ from input", n, out[0], out[len(out)-1])
		}
	}

	diff(t,
		[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(1, 1), Pt(1, 1), Pt(0, 1)},
		LinearAnchors([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}))
	diff(t, []Point{Pt(3, 4)}, LinearAnchors([]Point{Pt(3, 4)}))
}

func TestCatmullAnchors(t *testing.T) {
	// Two points: one cubic with tangents from the extrapolated ends.
	diff(t,
		[]Point{Pt(0, 0), Pt(1, 0), Pt(4, 0), Pt(6, 0)},
		CatmullAnchors([]Point{Pt(0, 0), Pt(6, 0)}))

	diff(t,
		[]Point{
			Pt(0, 0), Pt(1, 0), Pt(5, -1), Pt(6, 0),
			Pt(6, 0), Pt(7, 1), Pt(6, 4), Pt(6, 6),
		},
		CatmullAnchors([]Point{Pt(0, 0), Pt(6, 0), Pt(6, 6)}))

	diff(t, []Point{Pt(3, 4)}, CatmullAnchors([]Point{Pt(3, 4)}))

	for n := 2; n <= 6; n++ {
		in := make([]Point, n)
		for i := range in {
			in[i] = Pt(float64(i), math.Sin(float64(i)))
		}
		out := CatmullAnchors(in)
		if len(out) != 4*(n-1) {
			t.Errorf("%d points: got %d anchors, want %d", n, len(out), 4*(n-1))
		}
		// Every input point is passed through.
		for i, pt := range in {
			if i == 0 {
				if out[0] != pt {
					t.Errorf("%d points: got first anchor %v, want %v", n, out[0], pt)
				}
				continue
			}
			if out[4*i-1] != pt {
				t.Errorf("%d points: got anchor %v, want %v", n, out[4*i-1], pt)
			}
		}
	}
}

func TestCatmullAnchorsSmooth(t *testing.T) {
	// At an interior join the tangents on both sides are collinear.
	out := CatmullAnchors([]Point{Pt(0, 0), Pt(3, 4), Pt(8, 1), Pt(10, 10)})
	for i := 3; i+2 < len(out); i += 4 {
		in := out[i].Sub(out[i-1])
		next := out[i+2].Sub(out[i+1])
		if c := in.Cross(next); math.Abs(c) > 1e-9 {
			t.Errorf("join %d: tangents not collinear, cross product %g", i, c)
		}
		if in.Dot(next) <= 0 {
			t.Errorf("join %d: tangents point in opposite directions", i)
		}
	}
}

func TestConvertDispatch(t *testing.T) {
	s := math.Sqrt2 / 2
	pts := []Point{Pt(1, 0), Pt(s, s), Pt(0, 1)}

	tests := []struct {
		kind Kind
		want []Point
	}{
		{BezierKind, pts},
		{LinearKind, LinearAnchors(pts)},
		{PerfectCircleKind, CircleAnchors(pts)},
		{CatmullKind, CatmullAnchors(pts)},
		{Kind(42), pts},
	}
	for _, tt := range tests {
		got, err := Convert(Segment{Kind: tt.kind, Points: pts})
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.kind, err)
			continue
		}
		diff(t, tt.want, got)
		if &got[0] == &pts[0] {
			t.Errorf("%s: result aliases input", tt.kind)
		}
	}
}

func TestConvertEmpty(t *testing.T) {
	for _, k := range []Kind{BezierKind, LinearKind, PerfectCircleKind, CatmullKind} {
		out, err := Convert(Segment{Kind: k})
		if !errors.Is(err, ErrEmptySegment) {
			t.Errorf("%s: got error %v, want ErrEmptySegment", k, err)
		}
		if out != nil {
			t.Errorf("%s: got %v, want no anchors", k, out)
		}
		if _, err := (Segment{Kind: k, Points: []Point{}}).Anchors(); !errors.Is(err, ErrEmptySegment) {
			t.Errorf("%s: got error %v, want ErrEmptySegment", k, err)
		}
	}
}

func TestConvertDegenerateCircle(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	out, err := Convert(Segment{Kind: PerfectCircleKind, Points: in})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, in, out)
}

func TestConvertSinglePoint(t *testing.T) {
	for _, k := range []Kind{BezierKind, LinearKind, PerfectCircleKind, CatmullKind} {
		out, err := Convert(Segment{Kind: k, Points: []Point{Pt(1, 2)}})
		if err != nil {
			t.Errorf("%s: unexpected error %v", k, err)
		}
		diff(t, []Point{Pt(1, 2)}, out)
	}
}

func TestConvertOpt(t *testing.T) {
	s := math.Sqrt2 / 2
	seg := Segment{PerfectCircleKind, []Point{Pt(1, 0), Pt(s, s), Pt(0, 1)}}
	got, err := ConvertOpt(seg, ArcOptions{MaxIterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := CircleAnchorsOpt(seg.Points, ArcOptions{MaxIterations: 1})
	diff(t, want, got)

	// Options only affect circular segments.
	lin := Segment{LinearKind, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}}
	got, err = ConvertOpt(lin, ArcOptions{MaxIterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, LinearAnchors(lin.Points), got)

	p := Path{seg, lin}
	a, err := p.AnchorsOpt(ArcOptions{MaxIterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Anchors()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) || a[1] == b[1] {
		t.Errorf("iteration limit had no effect: %v vs %v", a, b)
	}
}
