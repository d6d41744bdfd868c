package volgrid

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/volgrid/geom"
)

// BatchItem is one independent sphere set in a batch run.
type BatchItem[T geom.Float] struct {
	Coords []T
	Radii  []T
}

// BatchResult holds the outcome for one batch item. Err is per-item; a
// failed item never aborts the rest of the batch.
type BatchResult[T geom.Float] struct {
	Volume T
	Err    error
}

// BatchEstimate runs Estimate over independent sphere sets concurrently.
// Each item owns its own grid, so no synchronization is needed beyond the
// worker bound: at most GOMAXPROCS goroutines run, and a resource
// controller tightens that further to its worker slots. Canceling ctx fails
// the not-yet-started items with the context error.
func (e *Estimator[T]) BatchEstimate(ctx context.Context, items []BatchItem[T]) []BatchResult[T] {
	start := time.Now()

	results := make([]BatchResult[T], len(items))

	var grp errgroup.Group
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for i, item := range items {
		i, item := i, item
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			if err := e.rc.AcquireWorker(ctx); err != nil {
				results[i].Err = err
				return nil
			}
			defer e.rc.ReleaseWorker()

			results[i].Volume, results[i].Err = e.Estimate(item.Coords, item.Radii)
			return nil
		})
	}
	_ = grp.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	e.metrics.RecordBatch(len(items), failed, time.Since(start))

	return results
}
