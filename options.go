package volgrid

import (
	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/resource"
)

type options[T geom.Float] struct {
	spacing    T
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
}

// Option configures an Estimator.
type Option[T geom.Float] func(*options[T])

// WithGridSpacing sets the voxel side length in world units. Values at or
// below zero are kept and rejected by Estimate as invalid input rather than
// silently replaced.
func WithGridSpacing[T geom.Float](spacing T) Option[T] {
	return func(o *options[T]) {
		o.spacing = spacing
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger[T geom.Float](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector[T geom.Float](mc MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithResourceController attaches a resource controller gating voxel-buffer
// memory and bounding batch concurrency. A nil controller enforces nothing.
func WithResourceController[T geom.Float](rc *resource.Controller) Option[T] {
	return func(o *options[T]) {
		o.controller = rc
	}
}
