package operations

import (
	"math"

	"github.com/go-sif/accum/types"
)

// Vec2Sum adds two-component vectors
type Vec2Sum struct{}

// Identity returns the zero vector
func (Vec2Sum) Identity() types.Vec2 {
	return types.Vec2{}
}

// Combine returns a + b
func (Vec2Sum) Combine(a, b types.Vec2) types.Vec2 {
	return a.Add(b)
}

// Vec3Sum adds three-component vectors
type Vec3Sum struct{}

// Identity returns the zero vector
func (Vec3Sum) Identity() types.Vec3 {
	return types.Vec3{}
}

// Combine returns a + b
func (Vec3Sum) Combine(a, b types.Vec3) types.Vec3 {
	return a.Add(b)
}

// Vec3Min keeps the component-wise minimum
type Vec3Min struct{}

// Identity returns a vector of +Inf
func (Vec3Min) Identity() types.Vec3 {
	return types.Splat(math.Inf(1))
}

// Combine returns the component-wise minimum of a and b
func (Vec3Min) Combine(a, b types.Vec3) types.Vec3 {
	return a.Min(b)
}

// Vec3Max keeps the component-wise maximum
type Vec3Max struct{}

// Identity returns a vector of -Inf
func (Vec3Max) Identity() types.Vec3 {
	return types.Splat(math.Inf(-1))
}

// Combine returns the component-wise maximum of a and b
func (Vec3Max) Combine(a, b types.Vec3) types.Vec3 {
	return a.Max(b)
}

// BoundsUnion grows a bounding box to contain every contributed box
type BoundsUnion struct{}

// Identity returns the empty box
func (BoundsUnion) Identity() types.Bounds {
	return types.EmptyBounds()
}

// Combine returns the smallest box containing a and b
func (BoundsUnion) Combine(a, b types.Bounds) types.Bounds {
	return a.Union(b)
}
