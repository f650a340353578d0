package tinyrender

import (
	"math"

	"github.com/gogpu/gputypes"
)

const eps = 1e-9

// sv returns a vertex at screen position (x, y) whose texture coordinate
// and color encode the position, for checking interpolation.
func sv(x, y int) VertexData {
	return VertexData{
		Pos:  V4(float64(x), float64(y), 0, 1),
		Col:  V3(float64(x), float64(y), 1),
		Nor:  V3(0, 0, 1),
		Tex:  V2(float64(x), float64(y)),
		CPos: V4(float64(x), float64(y), 0, 1),
		SPos: Pt(x, y),
		InvW: 1,
	}
}

func approxVertex(a, b VertexData, epsilon float64) bool {
	return a.Pos.Approx(b.Pos, epsilon) &&
		a.Col.Approx(b.Col, epsilon) &&
		a.Nor.Approx(b.Nor, epsilon) &&
		a.Tex.Approx(b.Tex, epsilon) &&
		a.CPos.Approx(b.CPos, epsilon) &&
		a.SPos == b.SPos &&
		math.Abs(a.Depth-b.Depth) < epsilon &&
		math.Abs(a.InvW-b.InvW) < epsilon
}

// ndcShader treats input positions as clip-space positions.
func ndcShader() Shader {
	return ShaderFuncs{
		Vertex: func(v *VertexData) { v.CPos = v.Pos },
		Fragment: func(v VertexData) gputypes.Color {
			return gputypes.NewColor(v.Tex.X, v.Tex.Y, 0, 1)
		},
	}
}

// ndcTriangle is a counter-clockwise triangle in the middle of NDC space.
func ndcTriangle() []VertexData {
	return []VertexData{
		{Pos: V4(-0.5, -0.5, 0, 1), Tex: V2(0, 0)},
		{Pos: V4(0.5, -0.5, 0, 1), Tex: V2(1, 0)},
		{Pos: V4(0, 0.5, 0, 1), Tex: V2(0, 1)},
	}
}

func discardSink() FragmentSink {
	return FragmentSinkFunc(func(VertexData, gputypes.Color) {})
}

type fragment struct {
	v VertexData
	c gputypes.Color
}

// collect returns a sink that appends every fragment to out.
func collect(out *[]fragment) FragmentSink {
	return FragmentSinkFunc(func(v VertexData, c gputypes.Color) {
		*out = append(*out, fragment{v: v, c: c})
	})
}
