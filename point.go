package tinyrender

// Point is an integer pixel position in screen space.
// Origin is the top-left corner, X increases right and Y increases down.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// In reports whether p lies inside [0,width] x [0,height].
// Both upper bounds are inclusive.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X <= width && p.Y >= 0 && p.Y <= height
}

// Vec2 converts the point to a floating-point vector.
func (p Point) Vec2() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}
