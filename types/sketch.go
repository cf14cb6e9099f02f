package types

import (
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// SketchWords is the number of 64-bit words in a Sketch
const SketchWords = 64

const sketchBits = SketchWords * 64

// Sketch is a linear-counting bitmap estimating the number of distinct keys added to it.
// Sketches union by bitwise or, which makes them safe to merge in any order.
type Sketch struct {
	Words [SketchWords]uint64
}

// SketchOf returns a Sketch holding a single key
func SketchOf(key string) Sketch {
	var s Sketch
	s.AddString(key)
	return s
}

// Add records a key
func (s *Sketch) Add(key []byte) {
	s.set(xxhash.Sum64(key))
}

// AddString records a key
func (s *Sketch) AddString(key string) {
	s.set(xxhash.Sum64String(key))
}

func (s *Sketch) set(h uint64) {
	bit := h % sketchBits
	s.Words[bit/64] |= 1 << (bit % 64)
}

// Union returns a Sketch holding the keys of both s and o
func (s Sketch) Union(o Sketch) Sketch {
	for i := range s.Words {
		s.Words[i] |= o.Words[i]
	}
	return s
}

// Estimate returns the estimated number of distinct keys. Once every bit is set the
// sketch is saturated, and the estimate stops growing.
func (s Sketch) Estimate() float64 {
	set := 0
	for _, w := range s.Words {
		set += bits.OnesCount64(w)
	}
	zeros := sketchBits - set
	if zeros == 0 {
		zeros = 1
	}
	return -float64(sketchBits) * math.Log(float64(zeros)/float64(sketchBits))
}
