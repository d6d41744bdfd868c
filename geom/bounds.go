package geom

// Bounds is an axis-aligned bounding box in world coordinates.
type Bounds[T Float] struct {
	Min [3]T
	Max [3]T
}

// BoundsOf computes the per-axis min/max over flat sphere centers in a single
// linear scan. coords must hold at least one triple; callers validate shape
// via NewSphereSet.
func BoundsOf[T Float](coords []T) Bounds[T] {
	b := Bounds[T]{
		Min: [3]T{Inf[T](1), Inf[T](1), Inf[T](1)},
		Max: [3]T{Inf[T](-1), Inf[T](-1), Inf[T](-1)},
	}
	for i := 0; i+2 < len(coords); i += 3 {
		for a := 0; a < 3; a++ {
			v := coords[i+a]
			if v < b.Min[a] {
				b.Min[a] = v
			}
			if v > b.Max[a] {
				b.Max[a] = v
			}
		}
	}
	return b
}

// Expand grows the bounds by margin on every side of every axis.
func (b Bounds[T]) Expand(margin T) Bounds[T] {
	for a := 0; a < 3; a++ {
		b.Min[a] -= margin
		b.Max[a] += margin
	}
	return b
}
