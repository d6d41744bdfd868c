package resource

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for volume estimation.
type Config struct {
	// GridMemoryLimitBytes caps the total size of live voxel buffers.
	// If 0, no hard limit is enforced (only tracking).
	GridMemoryLimitBytes int64

	// MaxWorkers bounds the number of concurrent batch estimates.
	// If 0, defaults to GOMAXPROCS.
	MaxWorkers int64

	// IOLimitBytesPerSec throttles bulk dataset reads.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller tracks and limits the resources of concurrent estimate calls.
// A nil *Controller is valid and enforces nothing.
type Controller struct {
	cfg Config

	gridSem  *semaphore.Weighted // nil if unlimited
	gridUsed atomic.Int64

	workerSem *semaphore.Weighted

	ioLimiter *rate.Limiter
}

// NewController creates a controller with the given limits.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.GridMemoryLimitBytes > 0 {
		c.gridSem = semaphore.NewWeighted(cfg.GridMemoryLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// TryAcquireGrid reserves memory for a voxel buffer without blocking.
// Returns false if the reservation would exceed the configured limit.
// An estimate call never waits for memory: when the grid does not fit,
// the call fails so the caller can retry with a coarser spacing.
func (c *Controller) TryAcquireGrid(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.gridSem != nil {
		if !c.gridSem.TryAcquire(bytes) {
			return false
		}
	}

	c.gridUsed.Add(bytes)
	return true
}

// ReleaseGrid returns a voxel-buffer reservation.
func (c *Controller) ReleaseGrid(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.gridSem != nil {
		c.gridSem.Release(bytes)
	}
	c.gridUsed.Add(-bytes)
}

// GridMemoryUsage returns the currently reserved voxel-buffer bytes.
func (c *Controller) GridMemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.gridUsed.Load()
}

// AcquireWorker reserves a batch worker slot, blocking while all slots are
// busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// ReleaseWorker returns a batch worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, bytes)
}
