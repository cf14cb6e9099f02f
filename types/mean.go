package types

// Mean is a running arithmetic mean, kept as a sum and a count so that partial means combine exactly
type Mean struct {
	Sum   float64
	Count uint64
}

// MeanOf returns a Mean holding a single observation
func MeanOf(x float64) Mean {
	return Mean{Sum: x, Count: 1}
}

// Merge returns the Mean of both sets of observations
func (m Mean) Merge(o Mean) Mean {
	return Mean{Sum: m.Sum + o.Sum, Count: m.Count + o.Count}
}

// Value returns the mean, or 0 if there are no observations
func (m Mean) Value() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}
