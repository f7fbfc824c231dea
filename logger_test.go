package anchors

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	CircleAnchors([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	if !strings.Contains(buf.String(), "degenerate arc") {
		t.Errorf("missing degenerate arc message in %q", buf.String())
	}

	buf.Reset()
	s := math.Sqrt2 / 2
	CircleAnchorsOpt([]Point{Pt(1, 0), Pt(s, s), Pt(0, 1)}, ArcOptions{MaxIterations: 1})
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "did not converge") {
		t.Errorf("missing non-convergence warning in %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
