// Package geom provides the geometric primitives of volgrid: sphere sets,
// axis-aligned bounds and the Float constraint shared by both precision
// backends.
//
// Coordinates are flat slices in [x1 y1 z1 x2 y2 z2 ...] order, matching the
// memory layout of a row-major (N, 3) array. All types are instantiated per
// precision; the float32 and float64 pipelines never share intermediate
// values.
package geom
