// Command anchors converts slider-style path segments to Bézier anchors and prints
// or draws the result.
//
// Usage:
//
//	anchors [flags] path.{yaml,toml}
//	anchors [flags] -curve "P|0:0|100:0|100:100"
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/anchors"
	"honnef.co/go/anchors/internal/pathfile"
	"honnef.co/go/anchors/internal/raster"
)

type options struct {
	file    string
	curves  []string
	format  string
	output  string
	verbose bool
	markers bool
	maxIter int
	tol     float64
	width   int
	height  int
}

type curveFlag []string

func (c *curveFlag) String() string     { return fmt.Sprint(*c) }
func (c *curveFlag) Set(s string) error { *c = append(*c, s); return nil }

func main() {
	var opts options
	var curves curveFlag
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: anchors [flags] [path.yaml|path.toml]\n")
		flag.PrintDefaults()
	}
	flag.Var(&curves, "curve", "segment in K|x:y|x:y notation; may be repeated")
	flag.StringVar(&opts.format, "format", "text", "output format: text, svg or png")
	flag.StringVar(&opts.output, "o", "", "output file (default standard output)")
	flag.BoolVar(&opts.verbose, "v", false, "log conversion details")
	flag.BoolVar(&opts.markers, "markers", false, "mark anchors in svg and png output")
	flag.IntVar(&opts.maxIter, "max-iter", 0, "maximum arc reshaping rounds (default from file, then 64)")
	flag.Float64Var(&opts.tol, "tol", 0, "arc reshaping tolerance (default from file, then 1e-6)")
	flag.IntVar(&opts.width, "width", 0, "image width (default from file, then 512)")
	flag.IntVar(&opts.height, "height", 0, "image height (default from file, then 512)")
	flag.Parse()

	opts.curves = curves
	switch flag.NArg() {
	case 0:
	case 1:
		opts.file = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	anchors.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	w := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := run(opts, bw); err != nil {
		log.Fatalf("anchors: %v", err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func run(opts options, w io.Writer) error {
	var file pathfile.File
	if opts.file != "" {
		f, err := pathfile.Open(opts.file)
		if err != nil {
			return err
		}
		file = *f
	}
	file.Curves = append(file.Curves, opts.curves...)
	if opts.maxIter > 0 {
		file.Arc.MaxIterations = opts.maxIter
	}
	if opts.tol > 0 {
		file.Arc.Tolerance = opts.tol
	}
	if opts.width > 0 {
		file.Render.Width = opts.width
	}
	if opts.height > 0 {
		file.Render.Height = opts.height
	}

	p, err := file.Path()
	if err != nil {
		if errors.Is(err, pathfile.ErrNoSegments) {
			return errors.New("nothing to convert; pass a path file or -curve")
		}
		return err
	}
	pts, err := p.AnchorsOpt(file.Arc.Options())
	if err != nil {
		return err
	}

	render := file.Render.WithDefaults()
	ropts := raster.Options{
		Width:   render.Width,
		Height:  render.Height,
		Stroke:  render.Stroke,
		Padding: render.Padding,
		Markers: opts.markers,
	}
	switch opts.format {
	case "text":
		for b := range anchors.Pieces(pts) {
			if _, err := fmt.Fprintln(w, anchors.Segment{Kind: anchors.BezierKind, Points: b}); err != nil {
				return err
			}
		}
		return nil
	case "svg":
		return raster.WriteSVG(w, pts, ropts)
	case "png":
		return raster.WritePNG(w, pts, ropts)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}
