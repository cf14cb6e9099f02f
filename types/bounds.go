package types

import "math"

// Bounds is an axis-aligned bounding box. The empty box has Min at +Inf and Max at -Inf,
// so that it is the identity of Union.
type Bounds struct {
	Min, Max Vec3
}

// EmptyBounds returns a box containing no points
func EmptyBounds() Bounds {
	return Bounds{Min: Splat(math.Inf(1)), Max: Splat(math.Inf(-1))}
}

// BoundsOf returns the smallest box containing every given point
func BoundsOf(points ...Vec3) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Empty returns true iff this box contains no points
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing b and p
func (b Bounds) Extend(p Vec3) Bounds {
	return Bounds{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both b and o
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Contains returns true iff p lies within b, inclusive of its faces
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
