package tinyrender

import (
	"math"
	"testing"
)

func TestVec2_Ops(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec2
		expect Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"add negative", V2(-1, -2).Add(V2(-3, -4)), V2(-4, -6)},
		{"sub", V2(5, 7).Sub(V2(2, 3)), V2(3, 4)},
		{"mul", V2(1.5, -2).Mul(2), V2(3, -4)},
		{"mul zero", V2(3, 4).Mul(0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, eps) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"x cross y", V2(1, 0), V2(0, 1), 1},
		{"y cross x", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(3, 3), 0},
		{"general", V2(3, 1), V2(2, 5), 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); got != tt.expect {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"anti-commutative", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); !got.Approx(tt.expect, eps) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_DotLength(t *testing.T) {
	v := V3(1, 2, 2)
	if got := v.Dot(V3(2, 0, 1)); got != 4 {
		t.Errorf("Dot = %v, want 4", got)
	}
	if got := v.Length(); got != 3 {
		t.Errorf("Length = %v, want 3", got)
	}
	if got := v.Sub(V3(1, 1, 1)).Add(V3(0, 0, 1)); got != V3(0, 1, 2) {
		t.Errorf("Sub/Add = %v, want (0, 1, 2)", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		expect Vec3
	}{
		{"axis", V3(0, 0, 5), V3(0, 0, 1)},
		{"diagonal", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"negative", V3(-2, 0, 0), V3(-1, 0, 0)},
		{"zero", V3(0, 0, 0), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.Approx(tt.expect, eps) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, got, tt.expect)
			}
			if tt.v != (Vec3{}) && math.Abs(got.Length()-1) > eps {
				t.Errorf("length = %v, want 1", got.Length())
			}
		})
	}
}

func TestVec4(t *testing.T) {
	p := Point4(V3(1, 2, 3))
	if p != V4(1, 2, 3, 1) {
		t.Errorf("Point4 = %v, want (1, 2, 3, 1)", p)
	}
	if got := p.Add(V4(1, 1, 1, 1)).Mul(2); got != V4(4, 6, 8, 4) {
		t.Errorf("Add/Mul = %v, want (4, 6, 8, 4)", got)
	}
	if got := p.XYZ(); got != V3(1, 2, 3) {
		t.Errorf("XYZ = %v, want (1, 2, 3)", got)
	}
}

func TestApprox_Strict(t *testing.T) {
	if V2(1, 1).Approx(V2(1, 1), 0) {
		t.Error("Approx with zero epsilon should never match")
	}
	if !V4(1, 1, 1, 1).Approx(V4(1, 1, 1, 1.05), 0.1) {
		t.Error("Approx(0.1) should match a 0.05 difference")
	}
	if V3(1, 1, 1).Approx(V3(1, 1, 1.2), 0.1) {
		t.Error("Approx(0.1) should not match a 0.2 difference")
	}
}

func TestPoint_In(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Pt(0, 0), true},
		{"interior", Pt(5, 5), true},
		{"far corner inclusive", Pt(10, 10), true},
		{"right of width", Pt(11, 0), false},
		{"below height", Pt(0, 11), false},
		{"negative x", Pt(-1, 0), false},
		{"negative y", Pt(0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.In(10, 10); got != tt.want {
				t.Errorf("%v.In(10, 10) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
