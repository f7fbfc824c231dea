// Package raster draws anchor sequences as images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/anchors"
)

// Options controls the layout and look of a drawing. Zero values select the values of
// [DefaultOptions].
type Options struct {
	Width, Height int
	// Width of the curve's stroke, in pixels.
	Stroke float64
	// Space between the curve's control box and the image border, in pixels.
	Padding float64
	// Maximum distance between the curve and its drawn approximation, in pixels.
	Tolerance float64
	// Draw a marker on every anchor.
	Markers bool

	Background color.Color
	Line       color.Color
	Marker     color.Color
}

var DefaultOptions = Options{
	Width:      512,
	Height:     512,
	Stroke:     2,
	Padding:    16,
	Tolerance:  0.1,
	Background: color.White,
	Line:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	Marker:     color.RGBA{0xd0, 0x30, 0x30, 0xff},
}

func (opts Options) withDefaults() Options {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions.Height
	}
	if opts.Stroke <= 0 {
		opts.Stroke = DefaultOptions.Stroke
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions.Tolerance
	}
	if opts.Background == nil {
		opts.Background = DefaultOptions.Background
	}
	if opts.Line == nil {
		opts.Line = DefaultOptions.Line
	}
	if opts.Marker == nil {
		opts.Marker = DefaultOptions.Marker
	}
	return opts
}

// Layout returns the transform that maps anchors into an image of the configured size,
// keeping Padding pixels free on every side.
func Layout(pts []anchors.Point, opts Options) anchors.Affine {
	opts = opts.withDefaults()
	dst := anchors.Rect{
		X0: opts.Padding,
		Y0: opts.Padding,
		X1: float64(opts.Width) - opts.Padding,
		Y1: float64(opts.Height) - opts.Padding,
	}
	return anchors.ControlBox(pts).MapTo(dst)
}

// Draw strokes the curves described by pts, scaled to fit the image.
func Draw(pts []anchors.Point, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	placed := make([]anchors.Point, len(pts))
	copy(placed, pts)
	Layout(pts, opts).TransformPoints(placed)

	z := vector.NewRasterizer(opts.Width, opts.Height)
	z.DrawOp = draw.Over
	hw := opts.Stroke / 2
	for b := range anchors.Pieces(placed) {
		prev := b[0]
		disc(z, prev, hw)
		for _, pt := range b.Flatten(opts.Tolerance) {
			segment(z, prev, pt, hw)
			disc(z, pt, hw)
			prev = pt
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Line), image.Point{})

	if opts.Markers {
		z.Reset(opts.Width, opts.Height)
		z.DrawOp = draw.Over
		for _, pt := range placed {
			square(z, pt, max(hw*1.5, 2))
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Marker), image.Point{})
	}
	return img
}

// WritePNG draws pts and writes the image to w as a PNG.
func WritePNG(w io.Writer, pts []anchors.Point, opts Options) error {
	return png.Encode(w, Draw(pts, opts))
}

// All shapes are added with the same orientation, so that overlapping shapes don't
// cancel each other out.

func segment(z *vector.Rasterizer, p0, p1 anchors.Point, hw float64) {
	d := p1.Sub(p0)
	if d.Hypot2() == 0 {
		return
	}
	n := d.Normalize().Orthogonal().Mul(hw)
	polygon(z,
		p0.Translate(n),
		p1.Translate(n),
		p1.Translate(n.Negate()),
		p0.Translate(n.Negate()))
}

func disc(z *vector.Rasterizer, c anchors.Point, r float64) {
	const sides = 16
	var pts [sides]anchors.Point
	for i := range pts {
		pts[i] = c.Translate(anchors.VecFromAngle(2 * math.Pi * float64(i) / sides).Mul(r))
	}
	polygon(z, pts[:]...)
}

func square(z *vector.Rasterizer, c anchors.Point, r float64) {
	polygon(z,
		anchors.Pt(c.X-r, c.Y-r),
		anchors.Pt(c.X+r, c.Y-r),
		anchors.Pt(c.X+r, c.Y+r),
		anchors.Pt(c.X-r, c.Y+r))
}

func polygon(z *vector.Rasterizer, pts ...anchors.Point) {
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
}
