package tinyrender

// RasterizeWire appends the three edges of triangle (v0, v1, v2) to out.
// Edges are walked in the order (v0,v1), (v1,v2), (v0,v2).
func RasterizeWire(v0, v1, v2 VertexData, width, height int, out *[]VertexData) {
	var r Rasterizer
	r.Wire(v0, v1, v2, width, height, out)
}

// RasterizeLine appends the samples of segment from->to to out using
// integer Bresenham stepping on the dominant axis.
//
// from and to are appended verbatim and are never bounds-checked. The
// stepped samples strictly between them take their attributes from
// Lerp(from, to, i/delta) and their screen position from the stepper;
// stepped samples outside [0,width] x [0,height] are dropped.
func RasterizeLine(from, to VertexData, width, height int, out *[]VertexData) {
	var r Rasterizer
	r.Line(from, to, width, height, out)
}

// Wire is RasterizeWire with statistics recorded on r.
func (r *Rasterizer) Wire(v0, v1, v2 VertexData, width, height int, out *[]VertexData) {
	r.Line(v0, v1, width, height, out)
	r.Line(v1, v2, width, height, out)
	r.Line(v0, v2, width, height, out)
}

// Line is RasterizeLine with statistics recorded on r.
func (r *Rasterizer) Line(from, to VertexData, width, height int, out *[]VertexData) {
	*out = append(*out, from)
	r.stats.Emitted++

	dx := to.SPos.X - from.SPos.X
	dy := to.SPos.Y - from.SPos.Y
	xstep, ystep := 1, 1
	if dx < 0 {
		xstep = -1
		dx = -dx
	}
	if dy < 0 {
		ystep = -1
		dy = -dy
	}
	dx2, dy2 := 2*dx, 2*dy
	sx, sy := from.SPos.X, from.SPos.Y

	emit := func(i, delta int) {
		r.stats.Tested++
		s := Lerp(from, to, float64(i)/float64(delta))
		s.SPos = Point{X: sx, Y: sy}
		if !s.SPos.In(width, height) {
			r.stats.Clipped++
			return
		}
		r.stats.Emitted++
		*out = append(*out, s)
	}

	if dy <= dx {
		pi := dy2 - dx
		for i := 0; i < dx; i++ {
			if i > 0 {
				emit(i, dx)
			}
			sx += xstep
			if pi <= 0 {
				pi += dy2
			} else {
				pi += dy2 - dx2
				sy += ystep
			}
		}
	} else {
		pi := dx2 - dy
		for i := 0; i < dy; i++ {
			if i > 0 {
				emit(i, dy)
			}
			sy += ystep
			if pi <= 0 {
				pi += dx2
			} else {
				pi += dx2 - dy2
				sx += xstep
			}
		}
	}

	*out = append(*out, to)
	r.stats.Emitted++
}
