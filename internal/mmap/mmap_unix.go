//go:build !windows

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}

func adviseSequential(data []byte) {
	// Advisory only; EINVAL from unaligned slices is ignored.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
