package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	opts := options{
		curves: []string{"L|0:0|10:0|10:10", "C|10:10|0:20"},
		format: "text",
	}
	if err := run(opts, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"B|0:0|10:0", "B|10:0|10:10"}
	if len(lines) != 3 {
		t.Fatalf("got %d pieces, want 3:\n%s", len(lines), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("piece %d: got %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[2], "B|10:10|") || !strings.HasSuffix(lines[2], "|0:20") {
		t.Errorf("got last piece %q", lines[2])
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "path.toml")
	data := "curves = [\"P|0:0|50:20|100:0\"]\n[render]\nwidth = 64\nheight = 48\n"
	if err := os.WriteFile(name, []byte(data), 0o666); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(options{file: name, format: "png", markers: true}, &buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if size := img.Bounds().Size(); size.X != 64 || size.Y != 48 {
		t.Errorf("got size %v, want 64x48", size)
	}

	buf.Reset()
	if err := run(options{file: name, format: "svg", width: 100}, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `width="100" height="48"`) {
		t.Errorf("flags did not override the file's render settings:\n%s", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"nothing", options{format: "text"}},
		{"bad curve", options{curves: []string{"X|0:0"}, format: "text"}},
		{"bad format", options{curves: []string{"L|0:0|1:1"}, format: "gif"}},
		{"missing file", options{file: "does-not-exist.yaml", format: "text"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
