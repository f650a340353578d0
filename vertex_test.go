package tinyrender

import (
	"math"
	"testing"
)

func vertexPair() (VertexData, VertexData) {
	v0 := VertexData{
		Pos:   V4(1, 2, 3, 1),
		Col:   V3(1, 0, 0),
		Nor:   V3(0, 1, 0),
		Tex:   V2(0, 0),
		CPos:  V4(0.5, 0.25, 0.1, 2),
		SPos:  Pt(10, 20),
		Depth: 0.1,
		InvW:  0.5,
	}
	v1 := VertexData{
		Pos:   V4(-3, 4, 7, 1),
		Col:   V3(0, 1, 0),
		Nor:   V3(1, 0, 0),
		Tex:   V2(1, 1),
		CPos:  V4(-1, 0.75, 0.9, 4),
		SPos:  Pt(30, 0),
		Depth: 0.9,
		InvW:  0.25,
	}
	return v0, v1
}

func TestLerp_Endpoints(t *testing.T) {
	v0, v1 := vertexPair()

	if got := Lerp(v0, v1, 0); !approxVertex(got, v0, eps) {
		t.Errorf("Lerp(v0, v1, 0) = %+v, want %+v", got, v0)
	}
	if got := Lerp(v0, v1, 1); !approxVertex(got, v1, eps) {
		t.Errorf("Lerp(v0, v1, 1) = %+v, want %+v", got, v1)
	}
}

func TestLerp_Fractions(t *testing.T) {
	v0, v1 := vertexPair()

	tests := []struct {
		name string
		frac float64
	}{
		{"quarter", 0.25},
		{"half", 0.5},
		{"three quarters", 0.75},
		{"extrapolate below", -0.1},
		{"extrapolate above", 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(v0, v1, tt.frac)
			f := tt.frac
			wantTex := V2(f, f)
			if !got.Tex.Approx(wantTex, eps) {
				t.Errorf("Tex = %v, want %v", got.Tex, wantTex)
			}
			wantPosX := (1-f)*1 + f*-3
			if math.Abs(got.Pos.X-wantPosX) > eps {
				t.Errorf("Pos.X = %v, want %v", got.Pos.X, wantPosX)
			}
			wantInvW := (1-f)*0.5 + f*0.25
			if math.Abs(got.InvW-wantInvW) > eps {
				t.Errorf("InvW = %v, want %v", got.InvW, wantInvW)
			}
			wantSX := int((1-f)*10 + f*30)
			if got.SPos.X != wantSX {
				t.Errorf("SPos.X = %d, want %d", got.SPos.X, wantSX)
			}
		})
	}
}

func TestBarycentricLerp_Basis(t *testing.T) {
	v0, v1 := vertexPair()
	v2 := sv(7, 9)

	tests := []struct {
		name string
		w    Vec3
		want VertexData
	}{
		{"v0", V3(1, 0, 0), v0},
		{"v1", V3(0, 1, 0), v1},
		{"v2", V3(0, 0, 1), v2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BarycentricLerp(v0, v1, v2, tt.w)
			if !approxVertex(got, tt.want, eps) {
				t.Errorf("BarycentricLerp(%v) = %+v, want %+v", tt.w, got, tt.want)
			}
		})
	}
}

func TestBarycentricLerp_Centroid(t *testing.T) {
	a, b, c := sv(0, 0), sv(3, 0), sv(0, 3)
	third := 1.0 / 3
	got := BarycentricLerp(a, b, c, V3(third, third, third))

	if !got.Tex.Approx(V2(1, 1), eps) {
		t.Errorf("Tex = %v, want (1, 1)", got.Tex)
	}
	if got.SPos != Pt(1, 1) && got.SPos != Pt(0, 0) {
		// 3*(1/3) may round just below 1 and truncate.
		t.Errorf("SPos = %v, want (1, 1) or (0, 0)", got.SPos)
	}
}

func TestBarycentricLerp_NoRenormalization(t *testing.T) {
	a, b, c := sv(2, 0), sv(0, 0), sv(0, 0)
	got := BarycentricLerp(a, b, c, V3(2, 0, 0))
	if !got.Tex.Approx(V2(4, 0), eps) {
		t.Errorf("Tex = %v, want (4, 0): weights must not be renormalized", got.Tex)
	}
}

func TestPerspectiveCorrection_RoundTrip(t *testing.T) {
	v, _ := vertexPair()
	v.CPos.W = 2.5
	orig := v

	v.PrePerspectiveCorrection()
	if math.Abs(v.InvW-0.4) > eps {
		t.Errorf("InvW after pre-correction = %v, want 0.4", v.InvW)
	}
	if !v.Tex.Approx(orig.Tex.Mul(0.4), eps) || !v.Col.Approx(orig.Col.Mul(0.4), eps) {
		t.Errorf("attributes not divided by w: tex=%v col=%v", v.Tex, v.Col)
	}

	v.PostPerspectiveCorrection()
	if !v.Pos.Approx(orig.Pos, eps) {
		t.Errorf("Pos = %v, want %v", v.Pos, orig.Pos)
	}
	if !v.Tex.Approx(orig.Tex, eps) {
		t.Errorf("Tex = %v, want %v", v.Tex, orig.Tex)
	}
	if !v.Nor.Approx(orig.Nor, eps) {
		t.Errorf("Nor = %v, want %v", v.Nor, orig.Nor)
	}
	if !v.Col.Approx(orig.Col, eps) {
		t.Errorf("Col = %v, want %v", v.Col, orig.Col)
	}
	if v.CPos != orig.CPos || v.SPos != orig.SPos {
		t.Error("clip and screen positions must not be touched by perspective correction")
	}
}

func TestPerspectiveCorrection_Interpolation(t *testing.T) {
	// Near vertex at w=1, far vertex at w=3. The screen-space midpoint of
	// the segment is a quarter of the way along it in world space.
	near := VertexData{Tex: V2(0, 0), CPos: V4(0, 0, 0, 1)}
	far := VertexData{Tex: V2(1, 0), CPos: V4(0, 0, 0, 3)}

	near.PrePerspectiveCorrection()
	far.PrePerspectiveCorrection()
	mid := Lerp(near, far, 0.5)
	mid.PostPerspectiveCorrection()

	if math.Abs(mid.Tex.X-0.25) > eps {
		t.Errorf("perspective-correct Tex.X = %v, want 0.25", mid.Tex.X)
	}

	naive := Lerp(VertexData{Tex: V2(0, 0)}, VertexData{Tex: V2(1, 0)}, 0.5)
	if math.Abs(naive.Tex.X-mid.Tex.X) < 0.1 {
		t.Error("perspective-correct and affine interpolation should differ")
	}
}

func TestPerspectiveDividedRestored_DoNotMutate(t *testing.T) {
	v, _ := vertexPair()
	orig := v

	d := PerspectiveDivided(v)
	if !approxVertex(v, orig, eps) {
		t.Error("PerspectiveDivided mutated its argument")
	}
	if math.Abs(d.InvW-1/v.CPos.W) > eps {
		t.Errorf("InvW = %v, want %v", d.InvW, 1/v.CPos.W)
	}

	r := PerspectiveRestored(d)
	if !r.Tex.Approx(orig.Tex, eps) || !r.Pos.Approx(orig.Pos, eps) {
		t.Errorf("PerspectiveRestored(PerspectiveDivided(v)) = %+v, want %+v", r, orig)
	}
}
