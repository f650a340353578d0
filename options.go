package tinyrender

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// PolygonMode selects how triangle topologies are rasterized.
type PolygonMode uint8

const (
	// PolygonFill covers the triangle interior.
	PolygonFill PolygonMode = iota
	// PolygonLine draws the three edges only.
	PolygonLine
)

// String returns the mode name.
func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParsePolygonMode parses "fill" or "line". The empty string selects
// PolygonFill.
func ParsePolygonMode(s string) (PolygonMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return PolygonFill, nil
	case "line", "wire", "wireframe":
		return PolygonLine, nil
	default:
		return PolygonFill, fmt.Errorf("%w: polygon mode %q", ErrInvalidOption, s)
	}
}

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	p := tinyrender.NewPipeline(gputypes.NewExtent2D(800, 600), shader,
//	    tinyrender.WithPolygonMode(tinyrender.PolygonLine),
//	    tinyrender.WithWorkers(4))
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	primitive   gputypes.PrimitiveState
	polygon     PolygonMode
	multisample gputypes.MultisampleState
	policy      DegenerateTrianglePolicy
	workers     int
}

// defaultOptions returns triangle-list fill, no culling, 4x sampling and
// sequential rasterization.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		primitive:   gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyTriangleList},
		multisample: gputypes.MultisampleState{Count: 4, Mask: ^uint64(0)},
		workers:     1,
	}
}

// WithPrimitiveState sets the topology, front face and cull mode.
func WithPrimitiveState(ps gputypes.PrimitiveState) PipelineOption {
	return func(o *pipelineOptions) {
		o.primitive = ps
	}
}

// WithPolygonMode sets fill or wireframe rasterization for triangles.
func WithPolygonMode(m PolygonMode) PipelineOption {
	return func(o *pipelineOptions) {
		o.polygon = m
	}
}

// WithMultisample selects the triangle sample pattern from ms.Count.
// See SamplePatternFor.
func WithMultisample(ms gputypes.MultisampleState) PipelineOption {
	return func(o *pipelineOptions) {
		o.multisample = ms
	}
}

// WithDegeneratePolicy sets the handling of near-zero-area triangles.
func WithDegeneratePolicy(p DegenerateTrianglePolicy) PipelineOption {
	return func(o *pipelineOptions) {
		o.policy = p
	}
}

// WithWorkers rasterizes up to n primitives concurrently. Values below 2
// keep rasterization on the calling goroutine. The output order is the
// same either way.
func WithWorkers(n int) PipelineOption {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}
