// Command trdemo renders a YAML scene with the tinyrender pipeline.
//
// Usage:
//
//	trdemo -scene scene.yaml -o out.png
//	trdemo -scene scene.yaml -o spin.png -frames 36 -spin 10 -workers 4
//
// With more than one frame the frame number is inserted before the file
// extension (spin_000.png, spin_001.png, ...).
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tinyrender"
	"github.com/gogpu/tinyrender/scene"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML)")
		output    = flag.String("o", "out.png", "output file (.png, .bmp, .tif)")
		frames    = flag.Int("frames", 1, "number of frames to render")
		spin      = flag.Float64("spin", 0, "rotation about the Y axis per frame, in degrees")
		scale     = flag.Float64("scale", 1, "resize the output by this factor")
		filter    = flag.String("filter", "nearest", "resize filter: nearest, bilinear or catmullrom")
		workers   = flag.Int("workers", 1, "rasterization workers per frame")
		jobs      = flag.Int("j", runtime.GOMAXPROCS(0), "frames rendered concurrently")
		verbose   = flag.Bool("v", false, "log pipeline statistics")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		tinyrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	scaler, err := parseFilter(*filter)
	if err != nil {
		log.Fatal(err)
	}
	if *scale <= 0 {
		log.Fatalf("scale must be positive, got %v", *scale)
	}

	r := &renderer{
		scene:   s,
		output:  *output,
		frames:  max(*frames, 1),
		spin:    *spin,
		scale:   *scale,
		scaler:  scaler,
		workers: *workers,
	}
	total, err := r.run(*jobs)
	if err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Rendered %d frame(s) to %s: %d primitives, %d culled, %d rejected, %d samples",
		r.frames, *output, total.Primitives, total.Culled, total.Rejected, total.Raster.Emitted))
}

type renderer struct {
	scene   *scene.Scene
	output  string
	frames  int
	spin    float64
	scale   float64
	scaler  draw.Scaler
	workers int

	mu    sync.Mutex
	total tinyrender.DrawStats
}

// run renders every frame, at most jobs at a time, and returns the summed
// statistics.
func (r *renderer) run(jobs int) (tinyrender.DrawStats, error) {
	bar := progressbar.NewOptions(r.frames,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(r.frames > 1 && term.IsTerminal(int(os.Stderr.Fd()))),
	)

	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i := range r.frames {
		g.Go(func() error {
			if err := r.frame(i); err != nil {
				return err
			}
			_ = bar.Add(1)
			return nil
		})
	}
	err := g.Wait()
	_ = bar.Finish()
	return r.total, err
}

func (r *renderer) frame(i int) error {
	fb, stats, err := r.scene.Render(float64(i)*r.spin, tinyrender.WithWorkers(r.workers))
	if err != nil {
		return fmt.Errorf("frame %d: %w", i, err)
	}

	r.mu.Lock()
	r.total.Vertices += stats.Vertices
	r.total.Primitives += stats.Primitives
	r.total.Rejected += stats.Rejected
	r.total.Culled += stats.Culled
	r.total.Raster = r.total.Raster.Add(stats.Raster)
	r.mu.Unlock()

	var img image.Image = fb.ToImage()
	if r.scale != 1 {
		img = resize(img, r.scale, r.scaler)
	}
	return tinyrender.SaveImage(frameName(r.output, i, r.frames), img)
}

func resize(src image.Image, scale float64, s draw.Scaler) image.Image {
	b := src.Bounds()
	w := max(int(float64(b.Dx())*scale+0.5), 1)
	h := max(int(float64(b.Dy())*scale+0.5), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func parseFilter(name string) (draw.Scaler, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.ApproxBiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown filter %q", name)
	}
}

// frameName inserts a zero-padded frame number before the extension when
// more than one frame is rendered.
func frameName(path string, i, frames int) string {
	if frames <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	digits := len(fmt.Sprint(frames - 1))
	return fmt.Sprintf("%s_%0*d%s", strings.TrimSuffix(path, ext), max(digits, 3), i, ext)
}
