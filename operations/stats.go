package operations

import "github.com/go-sif/accum/types"

// MeanOf averages observations contributed as types.Mean values
type MeanOf struct{}

// Identity returns a Mean with no observations
func (MeanOf) Identity() types.Mean {
	return types.Mean{}
}

// Combine merges two partial means
func (MeanOf) Combine(a, b types.Mean) types.Mean {
	return a.Merge(b)
}

// Distinct estimates the number of distinct keys, contributed as types.Sketch values
type Distinct struct{}

// Identity returns an empty sketch
func (Distinct) Identity() types.Sketch {
	return types.Sketch{}
}

// Combine returns the union of a and b
func (Distinct) Combine(a, b types.Sketch) types.Sketch {
	return a.Union(b)
}
