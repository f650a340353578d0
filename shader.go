package tinyrender

import "github.com/gogpu/gputypes"

// Shader is the pair of programmable stages a caller plugs into the
// pipeline.
type Shader interface {
	// VertexShader maps v from model space to world space (Pos) and clip
	// space (CPos) in place. It may write further derived attributes.
	VertexShader(v *VertexData)

	// FragmentShader returns the color of an interpolated,
	// perspective-corrected sample. It must not retain or modify v.
	FragmentShader(v VertexData) gputypes.Color
}

// ShaderFuncs adapts two ordinary functions to the Shader interface.
// A nil Vertex leaves vertices untouched; a nil Fragment yields opaque white.
type ShaderFuncs struct {
	Vertex   func(v *VertexData)
	Fragment func(v VertexData) gputypes.Color
}

// VertexShader calls f.Vertex.
func (f ShaderFuncs) VertexShader(v *VertexData) {
	if f.Vertex != nil {
		f.Vertex(v)
	}
}

// FragmentShader calls f.Fragment.
func (f ShaderFuncs) FragmentShader(v VertexData) gputypes.Color {
	if f.Fragment == nil {
		return gputypes.ColorWhite
	}
	return f.Fragment(v)
}

// DefaultShader is the reference smoke-test stage. It transforms positions
// through Model and then ViewProject, and colors each sample with its
// texture coordinate as (r, g) with b=0 and a=1.
type DefaultShader struct {
	Model       Mat4
	ViewProject Mat4
}

// NewDefaultShader returns a DefaultShader with identity matrices.
func NewDefaultShader() *DefaultShader {
	return &DefaultShader{Model: Identity(), ViewProject: Identity()}
}

// VertexShader applies the model and view-projection transforms.
func (s *DefaultShader) VertexShader(v *VertexData) {
	v.Pos = s.Model.Transform(Point4(v.Pos.XYZ()))
	v.CPos = s.ViewProject.Transform(v.Pos)
}

// FragmentShader returns (tex.x, tex.y, 0, 1).
func (s *DefaultShader) FragmentShader(v VertexData) gputypes.Color {
	return gputypes.NewColor(v.Tex.X, v.Tex.Y, 0, 1)
}

// ColorShader transforms like DefaultShader and outputs the interpolated
// vertex color.
type ColorShader struct {
	DefaultShader
}

// FragmentShader returns the interpolated vertex color, opaque.
func (s *ColorShader) FragmentShader(v VertexData) gputypes.Color {
	return gputypes.NewColorRGB(v.Col.X, v.Col.Y, v.Col.Z)
}

// NormalShader transforms like DefaultShader, also moving the normal into
// world space, and visualises the normal as a color.
type NormalShader struct {
	DefaultShader
}

// VertexShader applies the transforms and the model's normal matrix.
func (s *NormalShader) VertexShader(v *VertexData) {
	s.DefaultShader.VertexShader(v)
	v.Nor = s.Model.TransformNormal(v.Nor)
}

// FragmentShader maps the normal from [-1,1] to [0,1] per channel.
func (s *NormalShader) FragmentShader(v VertexData) gputypes.Color {
	n := v.Nor.Normalize()
	return gputypes.NewColorRGB((n.X+1)/2, (n.Y+1)/2, (n.Z+1)/2)
}
