package tinyrender

import "math"

// Mat4 represents a 4x4 transformation matrix in row-major order.
// Vectors are columns, so a transform applies as M * v and
// A.Multiply(B) applies B first.
type Mat4 [4][4]float64

// Identity returns the identity transformation matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateX creates a rotation around the X axis (angle in radians).
func RotateX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[1][1], m[1][2] = cos, -sin
	m[2][1], m[2][2] = sin, cos
	return m
}

// RotateY creates a rotation around the Y axis (angle in radians).
func RotateY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][2] = cos, sin
	m[2][0], m[2][2] = -sin, cos
	return m
}

// RotateZ creates a rotation around the Z axis (angle in radians).
func RotateZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return m
}

// Perspective creates a right-handed projection matrix mapping the view
// frustum to clip space with NDC depth in [-1, 1]. fovy is in radians.
// The resulting clip-space w equals the view-space distance in front of
// the camera.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}

// LookAt creates a view matrix for a camera at eye looking at target.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Multiply multiplies two matrices (m * other).
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return r
}

// Transform applies the matrix to a homogeneous vector.
func (m Mat4) Transform(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// TransformNormal applies the inverse-transpose of the upper 3x3 block to a
// normal and renormalizes it. The cofactor matrix is used directly since it
// differs from the inverse-transpose only by the determinant.
func (m Mat4) TransformNormal(n Vec3) Vec3 {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	c10 := m[0][2]*m[2][1] - m[0][1]*m[2][2]
	c11 := m[0][0]*m[2][2] - m[0][2]*m[2][0]
	c12 := m[0][1]*m[2][0] - m[0][0]*m[2][1]
	c20 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	c21 := m[0][2]*m[1][0] - m[0][0]*m[1][2]
	c22 := m[0][0]*m[1][1] - m[0][1]*m[1][0]

	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	r := Vec3{
		X: c00*n.X + c01*n.Y + c02*n.Z,
		Y: c10*n.X + c11*n.Y + c12*n.Z,
		Z: c20*n.X + c21*n.Y + c22*n.Z,
	}
	if det < 0 {
		r = r.Mul(-1)
	}
	return r.Normalize()
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}
