// Package volgrid estimates the volume occupied by a set of possibly
// overlapping spheres by rasterizing them onto a uniform voxel grid and
// counting occupied cells.
//
// The result is an approximation whose error shrinks with the grid spacing.
// Overlap is handled with union semantics: a voxel claimed by one sphere is
// never counted again for another.
//
// # Quick Start
//
//	vol, err := volgrid.VolumeFromSpheres(
//	    []float64{0, 0, 0, 1.5, 0, 0}, // flat centers [x1 y1 z1 x2 y2 z2]
//	    []float64{1.0, 0.5},
//	    0.1, // grid spacing
//	)
//
// For repeated calls, configure an Estimator once:
//
//	est := volgrid.New[float64](
//	    volgrid.WithGridSpacing(0.05),
//	    volgrid.WithLogger(volgrid.NewTextLogger(slog.LevelDebug)),
//	    volgrid.WithResourceController(resource.NewController(resource.Config{
//	        GridMemoryLimitBytes: 1 << 30,
//	    })),
//	)
//	vol, err := est.Estimate(coords, radii)
//
// # Precision
//
// The pipeline is generic over float32 and float64. Both instantiations run
// the identical algorithm in their own precision end to end; the float32
// result is not a cast of the float64 one.
//
// # Errors
//
// All failures are terminal for the call and satisfy errors.Is against one
// of two sentinels: ErrInvalidInput (empty set, non-positive spacing, count
// mismatch, negative radius) or ErrResourceExhausted (extent overflow or a
// voxel buffer over the memory limit). There are no partial results.
//
// # Concurrency
//
// Estimators hold no mutable state between calls; independent calls may run
// concurrently without synchronization. BatchEstimate fans a slice of sphere
// sets out over bounded workers.
package volgrid
