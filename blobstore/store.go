// Package blobstore abstracts where sphere datasets live.
//
// The estimator core never performs IO; dataset access is confined to the
// loading layer, which reads blobs through this interface from memory, the
// local filesystem, or S3-compatible object storage.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a read-only source of dataset blobs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a blob for sequential reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to one dataset.
type Blob interface {
	io.Reader
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}
