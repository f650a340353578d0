package tinyrender

import "math"

// barycentricEpsilon is the smallest doubled triangle area, in pixels, for
// which Barycentric solves the weights.
const barycentricEpsilon = 1e-2

// RasterizeFill appends the covered sub-samples of triangle (v0, v1, v2) to
// out, interpolated with BarycentricLerp.
//
// Every pixel of the integer bounding box of the three screen positions is
// tested at the four Pattern4x offsets. Up to four samples per pixel are
// emitted and never merged; resolving them is the caller's job. Samples
// whose interpolated screen position falls outside [0,width] x [0,height]
// are dropped.
func RasterizeFill(v0, v1, v2 VertexData, width, height int, out *[]VertexData) {
	var r Rasterizer
	r.Fill(v0, v1, v2, width, height, out)
}

// Fill is RasterizeFill using r's policy and sample pattern, with
// statistics recorded on r.
func (r *Rasterizer) Fill(v0, v1, v2 VertexData, width, height int, out *[]VertexData) {
	a, b, c := v0.SPos, v1.SPos, v2.SPos
	leftb := min(a.X, b.X, c.X)
	rightb := max(a.X, b.X, c.X)
	lowerb := min(a.Y, b.Y, c.Y)
	upperb := max(a.Y, b.Y, c.Y)

	pattern := r.pattern()
	for x := leftb; x <= rightb; x++ {
		for y := lowerb; y <= upperb; y++ {
			for _, off := range pattern {
				px, py := float64(x)+off.X, float64(y)+off.Y
				r.stats.Tested++
				if !InsideTriangle(px, py, a, b, c) {
					continue
				}
				r.stats.Covered++

				w := Barycentric(px, py, a, b, c)
				if w == SentinelWeights {
					r.stats.Degenerate++
					var keep bool
					if w, keep = r.Policy.resolve(w); !keep {
						r.stats.Clipped++
						continue
					}
				}

				s := BarycentricLerp(v0, v1, v2, w)
				if !s.SPos.In(width, height) {
					r.stats.Clipped++
					continue
				}
				r.stats.Emitted++
				*out = append(*out, s)
			}
		}
	}
}

// InsideTriangle reports whether (px, py) lies strictly inside triangle
// (a, b, c) of either winding. The three edge functions must all be
// positive or all be negative; a point on an edge is outside, so samples on
// an edge shared by two triangles are covered by neither.
func InsideTriangle(px, py float64, a, b, c Point) bool {
	p := Vec2{X: px, Y: py}
	ab := b.Vec2().Sub(a.Vec2())
	bc := c.Vec2().Sub(b.Vec2())
	ca := a.Vec2().Sub(c.Vec2())

	e0 := ab.Cross(p.Sub(a.Vec2()))
	e1 := bc.Cross(p.Sub(b.Vec2()))
	e2 := ca.Cross(p.Sub(c.Vec2()))

	if e0 > 0 && e1 > 0 && e2 > 0 {
		return true
	}
	return e0 < 0 && e1 < 0 && e2 < 0
}

// Barycentric returns the weights of (px, py) relative to triangle
// (a, b, c). When the triangle's doubled area is within barycentricEpsilon
// of zero it returns SentinelWeights.
func Barycentric(px, py float64, a, b, c Point) Vec3 {
	s1 := Vec3{X: float64(b.X - a.X), Y: float64(c.X - a.X), Z: float64(a.X) - px}
	s2 := Vec3{X: float64(b.Y - a.Y), Y: float64(c.Y - a.Y), Z: float64(a.Y) - py}
	u := s1.Cross(s2)
	if math.Abs(u.Z) <= barycentricEpsilon {
		return SentinelWeights
	}
	return Vec3{X: 1 - (u.X+u.Y)/u.Z, Y: u.X / u.Z, Z: u.Y / u.Z}
}
