package blobstore

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/hupe1980/volgrid/internal/mmap"
)

// LocalStore serves blobs from a directory on the local filesystem.
// Files are memory-mapped, so multi-gigabyte datasets are read without
// buffering them through the heap.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	return &localBlob{m: m, r: bytes.NewReader(m.Bytes())}, nil
}

type localBlob struct {
	m *mmap.File
	r *bytes.Reader
}

func (b *localBlob) Read(p []byte) (int, error) { return b.r.Read(p) }

func (b *localBlob) Size() int64 { return b.m.Size() }

func (b *localBlob) Close() error { return b.m.Close() }
