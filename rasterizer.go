package tinyrender

// RasterStats counts what a Rasterizer did. Counters accumulate until
// ResetStats.
type RasterStats struct {
	// Tested is the number of candidate samples examined. For triangles
	// that is every sub-sample of the bounding box, for lines every
	// stepped interior sample.
	Tested int
	// Covered is the number of triangle sub-samples that passed the
	// edge-function test.
	Covered int
	// Degenerate is the number of covered sub-samples that received
	// SentinelWeights.
	Degenerate int
	// Clipped is the number of samples dropped by the bounds test or the
	// degenerate policy.
	Clipped int
	// Emitted is the number of samples appended to the output.
	Emitted int
}

// Add returns the sum of two stats.
func (s RasterStats) Add(o RasterStats) RasterStats {
	return RasterStats{
		Tested:     s.Tested + o.Tested,
		Covered:    s.Covered + o.Covered,
		Degenerate: s.Degenerate + o.Degenerate,
		Clipped:    s.Clipped + o.Clipped,
		Emitted:    s.Emitted + o.Emitted,
	}
}

// Rasterizer turns screen-space primitives into VertexData samples.
//
// The zero value is ready to use: DegenerateSentinel and Pattern4x.
// A Rasterizer is not safe for concurrent use; use one per goroutine.
type Rasterizer struct {
	// Policy handles covered samples of near-zero-area triangles.
	Policy DegenerateTrianglePolicy

	// Pattern is the triangle sub-sample pattern. Nil means Pattern4x.
	Pattern SamplePattern

	stats RasterStats
}

// Stats returns the counters accumulated since the last reset.
func (r *Rasterizer) Stats() RasterStats {
	return r.stats
}

// ResetStats clears the counters.
func (r *Rasterizer) ResetStats() {
	r.stats = RasterStats{}
}

// Point appends v unless its screen position is outside
// [0,width] x [0,height].
func (r *Rasterizer) Point(v VertexData, width, height int, out *[]VertexData) {
	r.stats.Tested++
	if !v.SPos.In(width, height) {
		r.stats.Clipped++
		return
	}
	r.stats.Emitted++
	*out = append(*out, v)
}

func (r *Rasterizer) pattern() SamplePattern {
	if len(r.Pattern) == 0 {
		return Pattern4x
	}
	return r.Pattern
}
