package anchors

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum number of digits after the decimal point. A value of 0 uses as many
	// digits as necessary to represent each coordinate exactly.
	MaxPrecision int
}

func (opts SVGOptions) appendFloat(dst []byte, f float64) []byte {
	if opts.MaxPrecision <= 0 {
		return strconv.AppendFloat(dst, f, 'f', -1, 64)
	}
	n := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', opts.MaxPrecision, 64)
	if s := string(dst[n:]); strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		dst = append(dst[:n], s...)
	}
	return dst
}

// SVG returns the path as SVG path data.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path data to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVG returns a sequence of path elements as SVG path data, such as
// "M0,0 L10,0 Q15,5 10,10".
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements as SVG path data to w. Coordinates are
// absolute and separated by commas.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	const flushAt = 4096
	var buf []byte
	first := true
	for el := range seq {
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		cmd, pts := el.svgCommand()
		buf = append(buf, cmd)
		for i, pt := range pts {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = opts.appendFloat(buf, pt.X)
			buf = append(buf, ',')
			buf = opts.appendFloat(buf, pt.Y)
		}
		if len(buf) >= flushAt {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	_, err := w.Write(buf)
	return err
}

func (el PathElement) svgCommand() (byte, []Point) {
	switch el.Kind {
	case MoveToKind:
		return 'M', []Point{el.P0}
	case LineToKind:
		return 'L', []Point{el.P0}
	case QuadToKind:
		return 'Q', []Point{el.P0, el.P1}
	case CubicToKind:
		return 'C', []Point{el.P0, el.P1, el.P2}
	default:
		panic(fmt.Sprintf("invalid path element kind %d", el.Kind))
	}
}
