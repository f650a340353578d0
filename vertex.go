package tinyrender

// VertexData is the full attribute set of one vertex at any pipeline stage.
//
// A VertexData is created by the vertex stage, interpolated into new values
// by the rasterizers, and read by the fragment stage. The only in-place
// changes after creation are the vertex shader and the perspective
// correction pair.
type VertexData struct {
	// Pos is the world-space position.
	Pos Vec4
	// Col is the vertex color.
	Col Vec3
	// Nor is the normal.
	Nor Vec3
	// Tex is the texture coordinate.
	Tex Vec2
	// CPos is the clip-space position produced by the projection transform.
	CPos Vec4
	// SPos is the pixel position after viewport mapping.
	SPos Point
	// Depth is the NDC depth written by viewport mapping.
	Depth float64
	// InvW holds 1/CPos.W between PrePerspectiveCorrection and
	// PostPerspectiveCorrection. It is interpolated like every other attribute.
	InvW float64
}

// Lerp returns the linear interpolation (1-frac)*v0 + frac*v1 of every
// interpolable attribute. frac is not clamped. The screen position is
// interpolated in floating point and truncated toward zero.
func Lerp(v0, v1 VertexData, frac float64) VertexData {
	a, b := 1-frac, frac
	return VertexData{
		Pos:   v0.Pos.Mul(a).Add(v1.Pos.Mul(b)),
		Col:   v0.Col.Mul(a).Add(v1.Col.Mul(b)),
		Nor:   v0.Nor.Mul(a).Add(v1.Nor.Mul(b)),
		Tex:   v0.Tex.Mul(a).Add(v1.Tex.Mul(b)),
		CPos:  v0.CPos.Mul(a).Add(v1.CPos.Mul(b)),
		Depth: a*v0.Depth + b*v1.Depth,
		InvW:  a*v0.InvW + b*v1.InvW,
		SPos: Point{
			X: int(a*float64(v0.SPos.X) + b*float64(v1.SPos.X)),
			Y: int(a*float64(v0.SPos.Y) + b*float64(v1.SPos.Y)),
		},
	}
}

// BarycentricLerp returns w.X*v0 + w.Y*v1 + w.Z*v2 for every interpolable
// attribute. The weights are used as given; callers supply weights that sum
// to one.
func BarycentricLerp(v0, v1, v2 VertexData, w Vec3) VertexData {
	return VertexData{
		Pos:   v0.Pos.Mul(w.X).Add(v1.Pos.Mul(w.Y)).Add(v2.Pos.Mul(w.Z)),
		Col:   v0.Col.Mul(w.X).Add(v1.Col.Mul(w.Y)).Add(v2.Col.Mul(w.Z)),
		Nor:   v0.Nor.Mul(w.X).Add(v1.Nor.Mul(w.Y)).Add(v2.Nor.Mul(w.Z)),
		Tex:   v0.Tex.Mul(w.X).Add(v1.Tex.Mul(w.Y)).Add(v2.Tex.Mul(w.Z)),
		CPos:  v0.CPos.Mul(w.X).Add(v1.CPos.Mul(w.Y)).Add(v2.CPos.Mul(w.Z)),
		Depth: w.X*v0.Depth + w.Y*v1.Depth + w.Z*v2.Depth,
		InvW:  w.X*v0.InvW + w.Y*v1.InvW + w.Z*v2.InvW,
		SPos: Point{
			X: int(w.X*float64(v0.SPos.X) + w.Y*float64(v1.SPos.X) + w.Z*float64(v2.SPos.X)),
			Y: int(w.X*float64(v0.SPos.Y) + w.Y*float64(v1.SPos.Y) + w.Z*float64(v2.SPos.Y)),
		},
	}
}

// PrePerspectiveCorrection divides the world-space attributes by the
// clip-space w so that they become affine in screen space. It stores 1/w in
// InvW and must run exactly once per vertex before screen-space
// interpolation.
func (v *VertexData) PrePerspectiveCorrection() {
	v.InvW = 1 / v.CPos.W
	v.Pos = v.Pos.Mul(v.InvW)
	v.Tex = v.Tex.Mul(v.InvW)
	v.Nor = v.Nor.Mul(v.InvW)
	v.Col = v.Col.Mul(v.InvW)
}

// PostPerspectiveCorrection recovers w from the interpolated InvW and
// multiplies the world-space attributes back by it. It must run exactly
// once per emitted sample before the attributes are read.
func (v *VertexData) PostPerspectiveCorrection() {
	w := 1 / v.InvW
	v.Pos = v.Pos.Mul(w)
	v.Tex = v.Tex.Mul(w)
	v.Nor = v.Nor.Mul(w)
	v.Col = v.Col.Mul(w)
}

// PerspectiveDivided returns a copy of v with PrePerspectiveCorrection applied.
func PerspectiveDivided(v VertexData) VertexData {
	v.PrePerspectiveCorrection()
	return v
}

// PerspectiveRestored returns a copy of v with PostPerspectiveCorrection applied.
func PerspectiveRestored(v VertexData) VertexData {
	v.PostPerspectiveCorrection()
	return v
}
