package tinyrender

import "math"

// Vec2 represents a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// Vec3 represents a 3D vector: colors, normals and barycentric weights.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the 3D cross product.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1 / length)
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// Vec4 represents a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Point4 extends a 3D position to homogeneous coordinates with w=1.
func Point4(p Vec3) Vec4 {
	return Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec4) Approx(w Vec4, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon &&
		math.Abs(v.W-w.W) < epsilon
}
