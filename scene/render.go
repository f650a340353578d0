package scene

import (
	"fmt"

	"github.com/gogpu/tinyrender"
)

// Render draws the scene into a new framebuffer with the model spun by
// spin degrees about the Y axis. extra options are applied after the
// scene's own.
func (s *Scene) Render(spin float64, extra ...tinyrender.PipelineOption) (*tinyrender.Framebuffer, tinyrender.DrawStats, error) {
	shader, err := s.NewShader(spin)
	if err != nil {
		return nil, tinyrender.DrawStats{}, err
	}
	opts, err := s.Options()
	if err != nil {
		return nil, tinyrender.DrawStats{}, err
	}
	opts = append(opts, extra...)

	fb := tinyrender.NewFramebuffer(s.Width, s.Height)
	fb.SetSamplesPerPixel(s.SamplesPerPixel())
	fb.Clear(s.ClearColor())

	p := tinyrender.NewPipeline(fb.Extent(), shader, opts...)
	defer p.Close()

	stats, err := p.Draw(s.VertexData(), fb)
	if err != nil {
		return nil, stats, fmt.Errorf("scene: draw: %w", err)
	}

	tinyrender.Logger().Debug("scene: rendered",
		"width", s.Width,
		"height", s.Height,
		"spin", spin,
		"fragments", stats.Raster.Emitted)

	return fb, stats, nil
}
