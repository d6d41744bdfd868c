package volgrid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/grid"
)

var (
	// ErrInvalidInput is the sentinel for rejected input: an empty sphere
	// set, a non-positive grid spacing, mismatched coordinate/radius counts
	// or a negative radius.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResourceExhausted is the sentinel for a grid that cannot be
	// represented or allocated. The caller may retry with a coarser spacing.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ErrGridTooLarge indicates that the voxel buffer was rejected by the
// configured memory limit.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrGridTooLarge struct {
	Cells int
	Bytes int64
	cause error
}

func (e *ErrGridTooLarge) Error() string {
	return fmt.Sprintf("grid of %d cells (%d bytes) exceeds the memory limit", e.Cells, e.Bytes)
}

func (e *ErrGridTooLarge) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the public taxonomy. Every
// error leaving the estimator satisfies errors.Is against exactly one of
// the two sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, geom.ErrEmptySet) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var cm *geom.ErrCountMismatch
	if errors.As(err, &cm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var nr *geom.ErrNegativeRadius
	if errors.As(err, &nr) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ns *grid.ErrNonPositiveSpacing
	if errors.As(err, &ns) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var tl *grid.ErrTooLarge
	if errors.As(err, &tl) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}
	var gl *ErrGridTooLarge
	if errors.As(err, &gl) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
