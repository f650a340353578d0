package tinyrender

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tinyrender/internal/parallel"
)

// batchSize bounds how many primitives are rasterized before their samples
// are flushed to the sink.
const batchSize = 256

// FragmentSink consumes shaded samples in emission order.
type FragmentSink interface {
	Fragment(v VertexData, c gputypes.Color)
}

// FragmentSinkFunc adapts a function to FragmentSink.
type FragmentSinkFunc func(v VertexData, c gputypes.Color)

// Fragment calls f(v, c).
func (f FragmentSinkFunc) Fragment(v VertexData, c gputypes.Color) {
	f(v, c)
}

// DrawStats summarises one Draw call.
type DrawStats struct {
	// Vertices is the number of input vertices.
	Vertices int
	// Primitives is the number of assembled primitives.
	Primitives int
	// Rejected counts primitives with a vertex at or behind the camera
	// plane (clip w <= 0).
	Rejected int
	// Culled counts triangles removed by the cull mode.
	Culled int
	// Raster aggregates the rasterizer counters.
	Raster RasterStats
}

// Pipeline runs vertex shading, viewport mapping, rasterization and
// fragment shading for batches of vertices.
//
// A Pipeline is not safe for concurrent Draw calls.
type Pipeline struct {
	extent  gputypes.Extent3D
	shader  Shader
	opts    pipelineOptions
	pattern SamplePattern
	pool    *parallel.WorkerPool
}

// NewPipeline creates a pipeline rendering into a target of the given
// extent. Only Width and Height are used.
func NewPipeline(extent gputypes.Extent3D, shader Shader, opts ...PipelineOption) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pattern, ok := SamplePatternFor(o.multisample)
	if !ok {
		Logger().Warn("tinyrender: unsupported sample count, using 4",
			"count", o.multisample.Count)
	}

	p := &Pipeline{
		extent:  extent,
		shader:  shader,
		opts:    o,
		pattern: pattern,
	}
	if o.workers > 1 {
		p.pool = parallel.NewWorkerPool(o.workers)
	}
	return p
}

// SetShader replaces the shader used by subsequent draws.
func (p *Pipeline) SetShader(s Shader) {
	p.shader = s
}

// Shader returns the current shader.
func (p *Pipeline) Shader() Shader {
	return p.shader
}

// Close releases the worker pool, if any.
func (p *Pipeline) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// primitive is an assembled point, line or triangle: indices into the
// shaded vertex slice.
type primitive struct {
	idx [3]int
	n   int
}

// result is the shaded output of one primitive.
type result struct {
	samples []VertexData
	colors  []gputypes.Color
	stats   RasterStats
}

// Draw shades vertices, assembles them by the pipeline topology and sends
// every resulting sample to sink. Samples of one primitive arrive in
// rasterization order and primitives arrive in submission order.
func (p *Pipeline) Draw(vertices []VertexData, sink FragmentSink) (DrawStats, error) {
	stats := DrawStats{Vertices: len(vertices)}
	if p.shader == nil {
		return stats, ErrNilShader
	}

	prims, err := assemble(p.opts.primitive.Topology, len(vertices))
	if err != nil {
		return stats, err
	}
	stats.Primitives = len(prims)

	width, height := int(p.extent.Width), int(p.extent.Height)
	shaded := make([]VertexData, len(vertices))
	for i, v := range vertices {
		p.shader.VertexShader(&v)
		ViewportTransform(&v, width, height)
		shaded[i] = v
	}

	keep := prims[:0]
	for _, prim := range prims {
		switch {
		case behindCamera(shaded, prim):
			stats.Rejected++
		case prim.n == 3 && p.culled(shaded, prim):
			stats.Culled++
		default:
			keep = append(keep, prim)
		}
	}
	if stats.Rejected > 0 {
		Logger().Warn("tinyrender: dropped primitives behind the camera",
			"count", stats.Rejected)
	}

	results := make([]result, min(batchSize, len(keep)))
	for start := 0; start < len(keep); start += batchSize {
		batch := keep[start:min(start+batchSize, len(keep))]
		run := func(i int) {
			results[i] = p.rasterize(shaded, batch[i], width, height)
		}
		if p.pool != nil {
			p.pool.Run(len(batch), run)
		} else {
			for i := range batch {
				run(i)
			}
		}

		for i := range batch {
			r := &results[i]
			for j, s := range r.samples {
				sink.Fragment(s, r.colors[j])
			}
			stats.Raster = stats.Raster.Add(r.stats)
			*r = result{}
		}
	}

	Logger().Debug("tinyrender: draw",
		"topology", p.opts.primitive.Topology,
		"primitives", stats.Primitives,
		"rejected", stats.Rejected,
		"culled", stats.Culled,
		"emitted", stats.Raster.Emitted,
		"clipped", stats.Raster.Clipped,
		"degenerate", stats.Raster.Degenerate)

	return stats, nil
}

// rasterize corrects, rasterizes and shades one primitive.
func (p *Pipeline) rasterize(shaded []VertexData, prim primitive, width, height int) result {
	var v [3]VertexData
	for k := range prim.n {
		v[k] = shaded[prim.idx[k]]
		v[k].PrePerspectiveCorrection()
	}

	r := Rasterizer{Policy: p.opts.policy, Pattern: p.pattern}
	var samples []VertexData
	switch prim.n {
	case 1:
		r.Point(v[0], width, height, &samples)
	case 2:
		r.Line(v[0], v[1], width, height, &samples)
	default:
		if p.opts.polygon == PolygonLine {
			r.Wire(v[0], v[1], v[2], width, height, &samples)
		} else {
			r.Fill(v[0], v[1], v[2], width, height, &samples)
		}
	}

	colors := make([]gputypes.Color, len(samples))
	for i := range samples {
		samples[i].PostPerspectiveCorrection()
		colors[i] = p.shader.FragmentShader(samples[i])
	}
	return result{samples: samples, colors: colors, stats: r.Stats()}
}

// culled reports whether triangle prim is removed by the cull mode.
// Zero-area triangles face neither way and are culled whenever culling is on.
func (p *Pipeline) culled(shaded []VertexData, prim primitive) bool {
	mode := p.opts.primitive.CullMode
	if mode == gputypes.CullModeNone {
		return false
	}
	a, b, c := shaded[prim.idx[0]].SPos, shaded[prim.idx[1]].SPos, shaded[prim.idx[2]].SPos
	area := b.Vec2().Sub(a.Vec2()).Cross(c.Vec2().Sub(a.Vec2()))
	if area == 0 {
		return true
	}
	// Screen Y points down, so counter-clockwise in NDC is negative here.
	front := area < 0
	if p.opts.primitive.FrontFace == gputypes.FrontFaceCW {
		front = !front
	}
	return (mode == gputypes.CullModeBack && !front) || (mode == gputypes.CullModeFront && front)
}

func behindCamera(shaded []VertexData, prim primitive) bool {
	for k := range prim.n {
		if shaded[prim.idx[k]].CPos.W <= 0 {
			return true
		}
	}
	return false
}

// ViewportTransform maps v.CPos through the perspective divide into screen
// space: SPos is the pixel position (origin top-left, y down) and Depth the
// NDC z. Coordinates are floored.
func ViewportTransform(v *VertexData, width, height int) {
	invW := 1 / v.CPos.W
	x, y, z := v.CPos.X*invW, v.CPos.Y*invW, v.CPos.Z*invW
	v.SPos = Point{
		X: int(math.Floor((x + 1) * 0.5 * float64(width))),
		Y: int(math.Floor((1 - y) * 0.5 * float64(height))),
	}
	v.Depth = z
}

// assemble groups n vertices into primitives for topology t.
func assemble(t gputypes.PrimitiveTopology, n int) ([]primitive, error) {
	var prims []primitive
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		for i := range n {
			prims = append(prims, primitive{idx: [3]int{i}, n: 1})
		}
	case gputypes.PrimitiveTopologyLineList:
		if n%2 != 0 {
			return nil, fmt.Errorf("%w: %s needs pairs, got %d vertices", ErrVertexCount, t, n)
		}
		for i := 0; i < n; i += 2 {
			prims = append(prims, primitive{idx: [3]int{i, i + 1}, n: 2})
		}
	case gputypes.PrimitiveTopologyLineStrip:
		if n == 1 {
			return nil, fmt.Errorf("%w: %s needs at least 2 vertices", ErrVertexCount, t)
		}
		for i := 0; i+1 < n; i++ {
			prims = append(prims, primitive{idx: [3]int{i, i + 1}, n: 2})
		}
	case gputypes.PrimitiveTopologyTriangleList:
		if n%3 != 0 {
			return nil, fmt.Errorf("%w: %s needs triples, got %d vertices", ErrVertexCount, t, n)
		}
		for i := 0; i < n; i += 3 {
			prims = append(prims, primitive{idx: [3]int{i, i + 1, i + 2}, n: 3})
		}
	case gputypes.PrimitiveTopologyTriangleStrip:
		if n == 1 || n == 2 {
			return nil, fmt.Errorf("%w: %s needs at least 3 vertices", ErrVertexCount, t)
		}
		for i := 0; i+2 < n; i++ {
			// Odd triangles swap their first two vertices to keep the winding.
			if i%2 == 0 {
				prims = append(prims, primitive{idx: [3]int{i, i + 1, i + 2}, n: 3})
			} else {
				prims = append(prims, primitive{idx: [3]int{i + 1, i, i + 2}, n: 3})
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTopology, t)
	}
	return prims, nil
}
