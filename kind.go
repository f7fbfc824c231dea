package anchors

import (
	"fmt"
	"strings"
)

// Kind is the interpolation kind of a path segment. It governs how the segment's
// control points are turned into Bézier anchors.
type Kind int

const (
	// The points already are Bézier anchors. This is the zero value, so a segment
	// without an explicit kind is passed through unchanged.
	BezierKind Kind = iota
	// Straight lines between consecutive points.
	LinearKind
	// A circular arc through the first three points.
	PerfectCircleKind
	// A Catmull-Rom spline through all points.
	CatmullKind
)

func (k Kind) String() string {
	switch k {
	case BezierKind:
		return "Bezier"
	case LinearKind:
		return "Linear"
	case PerfectCircleKind:
		return "PerfectCircle"
	case CatmullKind:
		return "Catmull"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Letter returns the single letter used for k in segment strings (B, L, P or C).
func (k Kind) Letter() string {
	switch k {
	case LinearKind:
		return "L"
	case PerfectCircleKind:
		return "P"
	case CatmullKind:
		return "C"
	default:
		return "B"
	}
}

// ParseKind parses a segment kind. It accepts the letters B, L, P and C as well as the
// names returned by [Kind.String], case-insensitively. "perfect" and "circle" are
// accepted for [PerfectCircleKind].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "bezier", "":
		return BezierKind, nil
	case "l", "linear":
		return LinearKind, nil
	case "p", "perfect", "circle", "perfectcircle":
		return PerfectCircleKind, nil
	case "c", "catmull":
		return CatmullKind, nil
	default:
		return 0, fmt.Errorf("%w: unknown segment kind %q", ErrSyntax, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
