package types

import "math"

// Vec2 is a two-component vector
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Vec3 is a three-component vector
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y), Z: math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y), Z: math.Max(v.Z, o.Z)}
}

// Splat returns a vector with all components set to f
func Splat(f float64) Vec3 {
	return Vec3{X: f, Y: f, Z: f}
}
