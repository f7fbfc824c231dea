// Package pathfile loads path descriptions from YAML and TOML files.
//
// A file lists segments either as tables with a kind and a point list, or in the
// compact "K|x:y|x:y" notation understood by [anchors.ParseSegment]:
//
//	segments:
//	  - kind: linear
//	    points: "0:0|100:0"
//	curves:
//	  - "P|100:0|150:50|100:100"
//	arc:
//	  max_iterations: 32
//	render:
//	  width: 256
//	  height: 256
//
// Segments come before curves in the resulting path.
package pathfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/anchors"
)

var (
	ErrUnknownFormat = errors.New("pathfile: unknown file format")
	ErrNoSegments    = errors.New("pathfile: file contains no segments")
)

// Segment is a segment as written in a file. Points uses the "x:y|x:y" notation of
// [anchors.ParsePoints].
type Segment struct {
	Kind   anchors.Kind `yaml:"kind" toml:"kind"`
	Points string       `yaml:"points" toml:"points"`
}

// Arc holds the options for converting circular segments. Zero values select the
// defaults of [anchors.DefaultArcOptions].
type Arc struct {
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance" toml:"tolerance"`
}

func (a Arc) Options() anchors.ArcOptions {
	return anchors.ArcOptions{
		MaxIterations: a.MaxIterations,
		Tolerance:     a.Tolerance,
	}
}

// Render holds settings for drawing the path. Zero values are replaced by the
// values of [DefaultRender].
type Render struct {
	Width   int     `yaml:"width" toml:"width"`
	Height  int     `yaml:"height" toml:"height"`
	Stroke  float64 `yaml:"stroke" toml:"stroke"`
	Padding float64 `yaml:"padding" toml:"padding"`
}

var DefaultRender = Render{
	Width:   512,
	Height:  512,
	Stroke:  2,
	Padding: 16,
}

func (r Render) WithDefaults() Render {
	if r.Width <= 0 {
		r.Width = DefaultRender.Width
	}
	if r.Height <= 0 {
		r.Height = DefaultRender.Height
	}
	if r.Stroke <= 0 {
		r.Stroke = DefaultRender.Stroke
	}
	if r.Padding < 0 {
		r.Padding = 0
	}
	return r
}

// File is the content of a path file.
type File struct {
	Segments []Segment `yaml:"segments" toml:"segments"`
	Curves   []string  `yaml:"curves" toml:"curves"`
	Arc      Arc       `yaml:"arc" toml:"arc"`
	Render   Render    `yaml:"render" toml:"render"`
}

// Path parses the file's segments and curves.
func (f *File) Path() (anchors.Path, error) {
	if len(f.Segments)+len(f.Curves) == 0 {
		return nil, ErrNoSegments
	}
	p := make(anchors.Path, 0, len(f.Segments)+len(f.Curves))
	for i, seg := range f.Segments {
		pts, err := anchors.ParsePoints(seg.Points)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		p = append(p, anchors.Segment{Kind: seg.Kind, Points: pts})
	}
	curves, err := anchors.ParsePath(f.Curves)
	if err != nil {
		return nil, fmt.Errorf("curves: %w", err)
	}
	return append(p, curves...), nil
}

// Decoder is implemented by the decoders of both file formats.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// YAML decodes YAML files, rejecting unknown fields.
func YAML(r io.Reader) Decoder {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec
}

// TOML decodes TOML files, rejecting unknown fields.
func TOML(r io.Reader) Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// DecoderFor picks the decoder for filename by its extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// Open reads the file with the given name, choosing the format by its extension.
func Open(filename string) (*File, error) {
	dec, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	f, err := Read(bufio.NewReader(fp), dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Read decodes a file from r. An empty document decodes to an empty File.
func Read(r io.Reader, dec DecoderFunc) (*File, error) {
	var f File
	if err := dec(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}
