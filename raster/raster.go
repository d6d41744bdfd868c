// Package raster marks the voxels covered by spheres on a grid.
//
// The kernel walks, per sphere, the clamped integer bounding box of the
// sphere in grid units and claims every voxel whose squared distance to the
// continuous center is within the squared radius. Claiming is test-and-set,
// so the resulting count is the size of the union of all spheres, not the
// sum of per-sphere coverage.
package raster

import (
	"fmt"

	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/grid"
)

// Spheres rasterizes every sphere of set onto g, marking covered voxels in
// occ, and returns the number of voxels newly claimed. occ must have been
// allocated for exactly g.Cells() cells and is typically fresh; calling with
// a partially marked buffer extends the union.
func Spheres[T geom.Float](g *grid.Grid[T], occ *grid.Occupancy, set geom.SphereSet[T]) int {
	if occ.Len() != g.Cells() {
		panic(fmt.Sprintf("raster: occupancy size %d does not match grid cells %d", occ.Len(), g.Cells()))
	}

	claimed := 0
	for i := 0; i < set.Len(); i++ {
		claimed += sphere(g, occ, set, i)
	}
	return claimed
}

func sphere[T geom.Float](g *grid.Grid[T], occ *grid.Occupancy, set geom.SphereSet[T], i int) int {
	r := set.Radius(i) / g.Spacing
	r2 := r * r

	wx, wy, wz := set.Center(i)
	cx := g.ToGridUnits(0, wx)
	cy := g.ToGridUnits(1, wy)
	cz := g.ToGridUnits(2, wz)

	// Candidate voxel box in grid units, lo inclusive, hi exclusive,
	// clamped to the extent. The grid's cushion guarantees the unclamped
	// box already lies inside for any sphere of the set.
	xlo, xhi := voxelRange(cx, r, g.Extent.X)
	ylo, yhi := voxelRange(cy, r, g.Extent.Y)
	zlo, zhi := voxelRange(cz, r, g.Extent.Z)

	claimed := 0
	for x := xlo; x < xhi; x++ {
		dx := T(x) - cx
		dx2 := dx * dx
		for y := ylo; y < yhi; y++ {
			dy := T(y) - cy
			dxy2 := dx2 + dy*dy
			for z := zlo; z < zhi; z++ {
				idx, ok := g.Index(x, y, z)
				if !ok {
					panic(fmt.Sprintf("raster: voxel (%d,%d,%d) outside extent %+v", x, y, z, g.Extent))
				}
				if occ.Test(idx) {
					continue
				}
				dz := T(z) - cz
				if dxy2+dz*dz <= r2 {
					if !occ.TestAndSet(idx) {
						claimed++
					}
				}
			}
		}
	}
	return claimed
}

// voxelRange clamps [floor(c-r), ceil(c+r)) to [0, extent).
func voxelRange[T geom.Float](c, r T, extent int) (lo, hi int) {
	lo = int(geom.Floor(c - r))
	if lo < 0 {
		lo = 0
	}
	hi = int(geom.Ceil(c + r))
	if hi > extent {
		hi = extent
	}
	return lo, hi
}
