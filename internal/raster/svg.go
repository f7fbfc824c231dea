package raster

import (
	"fmt"
	"image/color"
	"io"

	"honnef.co/go/anchors"
)

// WriteSVG writes pts as a standalone SVG document, laid out the same way as by
// [Draw].
func WriteSVG(w io.Writer, pts []anchors.Point, opts Options) error {
	opts = opts.withDefaults()
	placed := make([]anchors.Point, len(pts))
	copy(placed, pts)
	Layout(pts, opts).TransformPoints(placed)
	p := anchors.NewBezPath(placed, opts.Tolerance)

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	writef(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(opts.Background))
	writef(`<path fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round" d="`,
		hex(opts.Line), opts.Stroke)
	if err != nil {
		return err
	}
	if err := p.WriteSVG(w, anchors.SVGOptions{MaxPrecision: 3}); err != nil {
		return err
	}
	writef("\"/>\n")
	if opts.Markers {
		r := max(opts.Stroke*0.75, 2)
		for _, pt := range placed {
			writef(`<rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="%s"/>`+"\n",
				pt.X-r, pt.Y-r, 2*r, 2*r, hex(opts.Marker))
		}
	}
	writef("</svg>\n")
	return err
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
