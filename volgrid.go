package volgrid

import (
	"time"

	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/grid"
	"github.com/hupe1980/volgrid/raster"
	"github.com/hupe1980/volgrid/resource"
)

// DefaultGridSpacing is the voxel side length used when none is configured,
// in world units.
const DefaultGridSpacing = 0.1

// Estimator computes grid-based union volumes for one numeric precision.
// It is stateless between calls and safe for concurrent use; every call
// allocates and releases its own voxel buffer.
type Estimator[T geom.Float] struct {
	spacing T
	logger  *Logger
	metrics MetricsCollector
	rc      *resource.Controller
}

// New creates an Estimator for precision T.
func New[T geom.Float](opts ...Option[T]) *Estimator[T] {
	o := options[T]{
		spacing: T(DefaultGridSpacing),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Estimator[T]{
		spacing: o.spacing,
		logger:  o.logger,
		metrics: o.metrics,
		rc:      o.controller,
	}
}

// Estimate returns the estimated volume of the union of the given spheres in
// world units cubed. coords is flat [x1 y1 z1 x2 y2 z2 ...] and must hold
// exactly 3*len(radii) values.
func (e *Estimator[T]) Estimate(coords, radii []T) (T, error) {
	start := time.Now()

	vol, err := e.estimate(coords, radii)

	e.metrics.RecordEstimate(len(radii), time.Since(start), err)
	return vol, err
}

// EstimateSet is Estimate for a pre-validated sphere set.
func (e *Estimator[T]) EstimateSet(set geom.SphereSet[T]) (T, error) {
	start := time.Now()

	vol, err := e.estimateSet(set)

	e.metrics.RecordEstimate(set.Len(), time.Since(start), err)
	return vol, err
}

func (e *Estimator[T]) estimate(coords, radii []T) (T, error) {
	set, err := geom.NewSphereSet(coords, radii)
	if err != nil {
		return 0, translateError(err)
	}
	return e.estimateSet(set)
}

func (e *Estimator[T]) estimateSet(set geom.SphereSet[T]) (T, error) {
	// The cushion keeps the largest sphere plus one cell of margin inside
	// the grid even when it sits on the corner of the center bounds.
	cushion := e.spacing + set.MaxRadius()

	g, err := grid.FromBounds(set.Bounds(), cushion, e.spacing)
	if err != nil {
		return 0, translateError(err)
	}

	bytes := grid.SizeBytes(g.Cells())
	if !e.rc.TryAcquireGrid(bytes) {
		return 0, translateError(&ErrGridTooLarge{Cells: g.Cells(), Bytes: bytes})
	}
	defer e.rc.ReleaseGrid(bytes)

	occ := grid.NewOccupancy(g.Cells())
	count := raster.Spheres(g, occ, set)

	vol := T(count) * g.VoxelVolume()

	e.logger.Debug("estimated sphere volume",
		"spheres", set.Len(),
		"extent_x", g.Extent.X,
		"extent_y", g.Extent.Y,
		"extent_z", g.Extent.Z,
		"occupied", count,
		"volume", float64(vol),
	)

	return vol, nil
}

// VolumeFromSpheres is a one-shot convenience around New and Estimate,
// mirroring the single-call shape of the classic API.
func VolumeFromSpheres[T geom.Float](coords, radii []T, spacing T) (T, error) {
	return New(WithGridSpacing(spacing)).Estimate(coords, radii)
}

// UniformRadii returns a radius slice of length n filled with r, for inputs
// where all spheres share one radius.
func UniformRadii[T geom.Float](n int, r T) []T {
	radii := make([]T, n)
	for i := range radii {
		radii[i] = r
	}
	return radii
}
