package grid

import (
	"fmt"
	"math/bits"
)

// Occupancy is the flat binary buffer of a single estimate call: one bit per
// voxel, packed into uint64 words, zero-initialized. A bit transitions
// unset -> set at most once and is never cleared, which is what makes
// overlapping spheres count as a union rather than a sum.
//
// Occupancy is not safe for concurrent use; each call owns its own buffer.
type Occupancy struct {
	words []uint64
	size  int
	count int
}

// NewOccupancy allocates a zeroed buffer for the given number of cells.
func NewOccupancy(cells int) *Occupancy {
	if cells < 0 {
		panic(fmt.Sprintf("grid: negative occupancy size %d", cells))
	}
	return &Occupancy{
		words: make([]uint64, (cells+63)/64),
		size:  cells,
	}
}

// Len returns the number of cells.
func (o *Occupancy) Len() int { return o.size }

// SizeBytes returns the footprint of the packed buffer. The memory gate
// reserves this amount before the buffer is allocated.
func SizeBytes(cells int) int64 {
	return (int64(cells) + 63) / 64 * 8
}

func (o *Occupancy) check(i int) {
	if uint(i) >= uint(o.size) {
		panic(fmt.Sprintf("grid: occupancy index %d out of range [0,%d)", i, o.size))
	}
}

// Test reports whether cell i is occupied.
func (o *Occupancy) Test(i int) bool {
	o.check(i)
	return o.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// TestAndSet marks cell i occupied and reports whether it already was.
func (o *Occupancy) TestAndSet(i int) bool {
	o.check(i)
	mask := uint64(1) << (uint(i) & 63)
	if o.words[i>>6]&mask != 0 {
		return true
	}
	o.words[i>>6] |= mask
	o.count++
	return false
}

// Count returns the number of occupied cells.
func (o *Occupancy) Count() int { return o.count }

// PopCount recounts the set bits word by word. It exists as an independent
// cross-check of Count for tests.
func (o *Occupancy) PopCount() int {
	n := 0
	for _, w := range o.words {
		n += bits.OnesCount64(w)
	}
	return n
}
