package grid

import (
	"fmt"
	"math"

	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/internal/conv"
)

// ErrNonPositiveSpacing indicates a grid spacing at or below zero.
type ErrNonPositiveSpacing struct {
	Spacing float64
}

func (e *ErrNonPositiveSpacing) Error() string {
	return fmt.Sprintf("grid spacing must be greater than zero, got %g", e.Spacing)
}

// ErrTooLarge indicates that the requested grid cannot be represented or
// allocated. Overflow in the extent product is reported through this error,
// never wrapped into a smaller allocation.
type ErrTooLarge struct {
	cause error
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("grid too large: %v", e.cause)
}

func (e *ErrTooLarge) Unwrap() error { return e.cause }

// Extent is the integer dimension of the grid per axis.
type Extent struct {
	X, Y, Z int
}

// Grid is a uniform voxel grid: an origin in world coordinates, an integer
// extent per axis and a cell side length. It carries no occupancy state; a
// fresh Occupancy buffer is allocated per estimate call.
type Grid[T geom.Float] struct {
	Origin  [3]T
	Extent  Extent
	Spacing T

	cells int
}

// FromBounds derives the grid covering bounds plus a cushion margin on every
// side. Per axis, the grid lines run from floor((min-cushion)/spacing) to
// ceil((max+cushion)/spacing) inclusive, so a sphere tangent to the raw
// bounds still falls strictly inside the grid.
func FromBounds[T geom.Float](b geom.Bounds[T], cushion, spacing T) (*Grid[T], error) {
	if !(spacing > 0) {
		return nil, &ErrNonPositiveSpacing{Spacing: float64(spacing)}
	}

	g := &Grid[T]{Spacing: spacing}
	b = b.Expand(cushion)

	ext := [3]int{}
	for a := 0; a < 3; a++ {
		lo, err := conv.FloatToInt64(math.Floor(float64(b.Min[a] / spacing)))
		if err != nil {
			return nil, &ErrTooLarge{cause: err}
		}
		hi, err := conv.FloatToInt64(math.Ceil(float64(b.Max[a] / spacing)))
		if err != nil {
			return nil, &ErrTooLarge{cause: err}
		}

		n, err := axisExtent(lo, hi)
		if err != nil {
			return nil, &ErrTooLarge{cause: err}
		}
		ext[a], err = conv.Int64ToInt(n)
		if err != nil {
			return nil, &ErrTooLarge{cause: err}
		}

		g.Origin[a] = T(lo) * spacing
	}
	g.Extent = Extent{X: ext[0], Y: ext[1], Z: ext[2]}

	cells64, err := conv.MulInt64(int64(ext[0]), int64(ext[1]))
	if err != nil {
		return nil, &ErrTooLarge{cause: err}
	}
	cells64, err = conv.MulInt64(cells64, int64(ext[2]))
	if err != nil {
		return nil, &ErrTooLarge{cause: err}
	}
	g.cells, err = conv.Int64ToInt(cells64)
	if err != nil {
		return nil, &ErrTooLarge{cause: err}
	}

	return g, nil
}

// axisExtent returns the inclusive grid-line count hi-lo+1 with explicit
// overflow detection. hi >= lo holds for any valid bounds.
func axisExtent(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, fmt.Errorf("inverted axis range [%d, %d]", lo, hi)
	}
	d := uint64(hi) - uint64(lo)
	if d >= math.MaxInt64 {
		return 0, fmt.Errorf("axis extent %d+1 exceeds int64", d)
	}
	return int64(d) + 1, nil
}

// Cells returns the total number of voxels nx*ny*nz.
func (g *Grid[T]) Cells() int { return g.cells }

// VoxelVolume returns the volume of a single cell in world units cubed,
// computed in the grid's own precision.
func (g *Grid[T]) VoxelVolume() T {
	return g.Spacing * g.Spacing * g.Spacing
}

// ToGridUnits converts a world coordinate on axis a to continuous grid
// coordinates relative to the origin.
func (g *Grid[T]) ToGridUnits(a int, v T) T {
	return (v - g.Origin[a]) / g.Spacing
}

// Index maps a voxel coordinate to its position in the flat occupancy
// buffer, x slowest-varying. ok is false when the coordinate lies outside
// the extent; callers never touch the buffer through an unchecked index.
func (g *Grid[T]) Index(x, y, z int) (idx int, ok bool) {
	if uint(x) >= uint(g.Extent.X) || uint(y) >= uint(g.Extent.Y) || uint(z) >= uint(g.Extent.Z) {
		return 0, false
	}
	return (x*g.Extent.Y+y)*g.Extent.Z + z, true
}
