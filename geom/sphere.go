package geom

import (
	"errors"
	"fmt"
)

// ErrEmptySet is returned when a sphere set holds no spheres.
var ErrEmptySet = errors.New("sphere set is empty")

// ErrCountMismatch indicates that the flat coordinate slice and the radius
// slice describe a different number of spheres.
type ErrCountMismatch struct {
	Coords int // number of scalar coordinates
	Radii  int // number of radii
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("coordinate/radius count mismatch: %d coordinates describe %d spheres, got %d radii",
		e.Coords, e.Coords/3, e.Radii)
}

// ErrNegativeRadius indicates a radius below zero.
type ErrNegativeRadius struct {
	Index  int
	Radius float64
}

func (e *ErrNegativeRadius) Error() string {
	return fmt.Sprintf("radius %d is negative: %g", e.Index, e.Radius)
}

// SphereSet is an immutable collection of N spheres sharing one precision.
// Centers are flat [x1 y1 z1 x2 ...]; radii are parallel to the triples.
type SphereSet[T Float] struct {
	coords []T
	radii  []T
}

// NewSphereSet validates the parallel slices and wraps them without copying.
// It fails on zero spheres, on a coordinate count that is not 3·len(radii),
// and on any negative radius. The empty check runs before any radius scan so
// an empty input is always reported as an empty set, not as a downstream
// arithmetic failure.
func NewSphereSet[T Float](coords, radii []T) (SphereSet[T], error) {
	if len(radii) == 0 || len(coords) == 0 {
		return SphereSet[T]{}, ErrEmptySet
	}
	if len(coords) != 3*len(radii) {
		return SphereSet[T]{}, &ErrCountMismatch{Coords: len(coords), Radii: len(radii)}
	}
	for i, r := range radii {
		if r < 0 {
			return SphereSet[T]{}, &ErrNegativeRadius{Index: i, Radius: float64(r)}
		}
	}
	return SphereSet[T]{coords: coords, radii: radii}, nil
}

// Len returns the number of spheres.
func (s SphereSet[T]) Len() int { return len(s.radii) }

// Center returns the center of sphere i.
func (s SphereSet[T]) Center(i int) (x, y, z T) {
	return s.coords[3*i], s.coords[3*i+1], s.coords[3*i+2]
}

// Radius returns the radius of sphere i.
func (s SphereSet[T]) Radius(i int) T { return s.radii[i] }

// MaxRadius returns the largest radius in the set.
func (s SphereSet[T]) MaxRadius() T {
	maxR := Inf[T](-1)
	for _, r := range s.radii {
		if r > maxR {
			maxR = r
		}
	}
	return maxR
}

// Bounds returns the axis-aligned bounds of the sphere centers. Radii are not
// included; grid sizing accounts for them through the cushion margin.
func (s SphereSet[T]) Bounds() Bounds[T] {
	return BoundsOf(s.coords)
}

// SumOfVolumes returns the sum of the analytic volumes of the individual
// spheres, ignoring overlap. It is an upper bound for the union volume and is
// mainly useful for sanity checks and tests.
func (s SphereSet[T]) SumOfVolumes() T {
	const fourThirdsPi = 4.0 / 3.0 * 3.141592653589793
	var sum T
	for _, r := range s.radii {
		sum += T(fourThirdsPi) * r * r * r
	}
	return sum
}
