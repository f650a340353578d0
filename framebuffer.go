package tinyrender

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// depthEpsilon is the NDC depth distance within which two samples of a
// pixel are treated as the same surface and accumulated together.
const depthEpsilon = 1e-4

// ErrUnknownFormat is returned by Save for unsupported file extensions.
var ErrUnknownFormat = errors.New("tinyrender: unknown image format")

// Framebuffer is a reference render target for pipeline output.
//
// It implements FragmentSink. Each pixel keeps the nearest surface seen so
// far and accumulates every sample of that surface; Resolve averages them
// and weights the result by coverage against the clear color. The
// rasterizers never resolve sub-samples themselves.
type Framebuffer struct {
	width  int
	height int

	// samplesPerPixel is the sample count that means full coverage.
	samplesPerPixel int
	depthTest       bool
	clear           gputypes.Color

	sum   []gputypes.Color
	count []int
	depth []float64
}

// NewFramebuffer creates a framebuffer with depth testing enabled and full
// coverage at four samples per pixel.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:           width,
		height:          height,
		samplesPerPixel: 4,
		depthTest:       true,
		clear:           gputypes.ColorBlack,
		sum:             make([]gputypes.Color, width*height),
		count:           make([]int, width*height),
		depth:           make([]float64, width*height),
	}
	fb.Clear(gputypes.ColorBlack)
	return fb
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Extent returns the framebuffer size as a render target extent.
func (fb *Framebuffer) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(fb.width), uint32(fb.height))
}

// SetSamplesPerPixel sets how many accumulated samples count as a fully
// covered pixel. Use len(pattern) for filled triangles and 1 for lines and
// points. Values below 1 are treated as 1.
func (fb *Framebuffer) SetSamplesPerPixel(n int) {
	fb.samplesPerPixel = max(n, 1)
}

// SetDepthTest enables or disables the nearest-surface test.
func (fb *Framebuffer) SetDepthTest(enabled bool) {
	fb.depthTest = enabled
}

// Clear resets every pixel to c with no samples and infinite depth.
func (fb *Framebuffer) Clear(c gputypes.Color) {
	fb.clear = c
	for i := range fb.sum {
		fb.sum[i] = gputypes.Color{}
		fb.count[i] = 0
		fb.depth[i] = math.Inf(1)
	}
}

// Fragment accumulates one shaded sample. Samples outside the pixel grid
// are ignored.
func (fb *Framebuffer) Fragment(v VertexData, c gputypes.Color) {
	x, y := v.SPos.X, v.SPos.Y
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := y*fb.width + x

	if fb.depthTest {
		switch d := fb.depth[i]; {
		case v.Depth < d-depthEpsilon:
			fb.sum[i] = gputypes.Color{}
			fb.count[i] = 0
			fb.depth[i] = v.Depth
		case v.Depth > d+depthEpsilon:
			return
		}
	}

	s := &fb.sum[i]
	s.R += c.R
	s.G += c.G
	s.B += c.B
	s.A += c.A
	fb.count[i]++
}

// Samples returns the number of samples accumulated at (x, y).
func (fb *Framebuffer) Samples(x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return fb.count[y*fb.width+x]
}

// Resolve returns the final color of (x, y): the average of its samples
// blended over the clear color by coverage.
func (fb *Framebuffer) Resolve(x, y int) gputypes.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return gputypes.ColorTransparent
	}
	i := y*fb.width + x
	n := fb.count[i]
	if n == 0 {
		return fb.clear
	}
	inv := 1 / float64(n)
	avg := gputypes.Color{R: fb.sum[i].R * inv, G: fb.sum[i].G * inv, B: fb.sum[i].B * inv, A: fb.sum[i].A * inv}
	coverage := min(float64(n)/float64(fb.samplesPerPixel), 1)
	return lerpColor(fb.clear, avg, coverage)
}

// ToImage resolves every pixel into an image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := range fb.height {
		for x := range fb.width {
			img.SetNRGBA(x, y, toNRGBA(fb.Resolve(x, y)))
		}
	}
	return img
}

// Encode writes the resolved image in the given format. See EncodeImage.
func (fb *Framebuffer) Encode(w io.Writer, format string) error {
	return EncodeImage(w, fb.ToImage(), format)
}

// Save writes the resolved image to path. See SaveImage.
func (fb *Framebuffer) Save(path string) error {
	return SaveImage(path, fb.ToImage())
}

// EncodeImage writes img as "png", "bmp" or "tiff" ("tif").
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveImage writes img to path, choosing the format from the file
// extension. Nothing is written when encoding fails.
func SaveImage(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, strings.TrimPrefix(filepath.Ext(path), ".")); err != nil {
		return fmt.Errorf("tinyrender: save %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) //nolint:gosec // output images are world-readable
}
