package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/tinyrender/scene"
)

func TestFrameName(t *testing.T) {
	tests := []struct {
		path   string
		i, n   int
		expect string
	}{
		{"out.png", 0, 1, "out.png"},
		{"out.png", 3, 10, "out_003.png"},
		{"dir/spin.bmp", 12, 2000, "dir/spin_0012.bmp"},
		{"noext", 1, 2, "noext_001"},
	}

	for _, tt := range tests {
		if got := frameName(tt.path, tt.i, tt.n); got != tt.expect {
			t.Errorf("frameName(%q, %d, %d) = %q, want %q", tt.path, tt.i, tt.n, got, tt.expect)
		}
	}
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"nearest", "bilinear", "CatmullRom"} {
		if _, err := parseFilter(name); err != nil {
			t.Errorf("parseFilter(%q): %v", name, err)
		}
	}
	if _, err := parseFilter("lanczos"); err == nil {
		t.Error("parseFilter accepted an unknown filter")
	}
}

func TestResize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 6))
	got := resize(src, 2.5, draw.NearestNeighbor)
	if got.Bounds() != image.Rect(0, 0, 25, 15) {
		t.Errorf("bounds = %v, want 25x15", got.Bounds())
	}
	got = resize(src, 0.01, draw.ApproxBiLinear)
	if got.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Errorf("bounds = %v, want 1x1", got.Bounds())
	}
}

func TestRendererFrames(t *testing.T) {
	s, err := scene.Load(filepath.Join("..", "..", "scene", "testdata", "triangle.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := filepath.Join(t.TempDir(), "spin.png")
	r := &renderer{
		scene:   s,
		output:  out,
		frames:  3,
		spin:    30,
		scale:   2,
		scaler:  draw.NearestNeighbor,
		workers: 2,
	}
	total, err := r.run(2)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if total.Primitives != 3 {
		t.Errorf("Primitives = %d, want 3", total.Primitives)
	}

	for i := range 3 {
		if _, err := os.Stat(frameName(out, i, 3)); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}
}
