package setio

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompress wraps r with the decompressor matching the outermost file
// extension of name. It returns the wrapped reader, the name with the
// compression extension stripped (for format detection), and a cleanup
// function that is safe to call unconditionally.
func decompress(r io.Reader, name string) (io.Reader, string, func(), error) {
	lower := strings.ToLower(name)

	switch {
	case strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, "", func() {}, err
		}
		return zr, strings.TrimSuffix(name, name[len(name)-3:]), func() { zr.Close() }, nil

	case strings.HasSuffix(lower, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", func() {}, err
		}
		return zr, strings.TrimSuffix(name, name[len(name)-4:]), zr.Close, nil

	case strings.HasSuffix(lower, ".lz4"):
		return lz4.NewReader(r), strings.TrimSuffix(name, name[len(name)-4:]), func() {}, nil

	default:
		return r, name, func() {}, nil
	}
}
