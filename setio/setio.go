// Package setio loads sphere datasets for volume estimation.
//
// Two formats are supported: XYZR text (one "x y z r" line per sphere,
// `#` comments) and a JSON document. Files compressed with gzip, zstd or
// lz4 are decompressed transparently based on the file extension. Sources
// can be a plain reader, a local file or a blobstore.
package setio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/hupe1980/volgrid/blobstore"
	"github.com/hupe1980/volgrid/codec"
	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/resource"
)

// Format identifies a dataset encoding.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = "auto"
	// FormatXYZR is whitespace-separated "x y z r" text.
	FormatXYZR Format = "xyzr"
	// FormatJSON is the JSON document format.
	FormatJSON Format = "json"
)

// Dataset is a loaded sphere set in precision T, plus the optional grid
// spacing a JSON document may carry.
type Dataset[T geom.Float] struct {
	Coords []T
	Radii  []T

	// GridSpacing is zero unless the source document sets one.
	GridSpacing T
}

// SphereSet validates the loaded slices into a geom.SphereSet.
func (d *Dataset[T]) SphereSet() (geom.SphereSet[T], error) {
	return geom.NewSphereSet(d.Coords, d.Radii)
}

type config struct {
	format Format
	codec  codec.Codec
	rc     *resource.Controller
}

// Option configures loading.
type Option func(*config)

// WithFormat forces a dataset format instead of extension detection.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithCodec sets the codec for JSON documents. If nil is passed,
// codec.Default is used.
func WithCodec(cd codec.Codec) Option {
	return func(c *config) {
		if cd == nil {
			cd = codec.Default
		}
		c.codec = cd
	}
}

// WithResourceController throttles reads with the controller's IO limit.
func WithResourceController(rc *resource.Controller) Option {
	return func(c *config) { c.rc = rc }
}

// Load reads a dataset from r. name is used for format and compression
// detection only; it does not have to exist on disk.
func Load[T geom.Float](ctx context.Context, r io.Reader, name string, opts ...Option) (*Dataset[T], error) {
	cfg := config{format: FormatAuto, codec: codec.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, cfg.rc)
	}

	r, rest, closeFn, err := decompress(r, name)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	format := cfg.format
	if format == FormatAuto {
		format = detectFormat(rest)
	}

	switch format {
	case FormatXYZR:
		return parseXYZR[T](r)
	case FormatJSON:
		return parseJSON[T](r, cfg.codec)
	default:
		return nil, fmt.Errorf("setio: unknown format %q", format)
	}
}

// LoadFile reads a dataset from the local filesystem.
func LoadFile[T geom.Float](ctx context.Context, path string, opts ...Option) (*Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load[T](ctx, f, path, opts...)
}

// LoadBlob reads a dataset from a blob store.
func LoadBlob[T geom.Float](ctx context.Context, store blobstore.Store, name string, opts ...Option) (*Dataset[T], error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return Load[T](ctx, b, name, opts...)
}

// detectFormat maps a (decompressed) file name to its format. XYZR is the
// fallback for unknown extensions.
func detectFormat(name string) Format {
	if strings.EqualFold(path.Ext(name), ".json") {
		return FormatJSON
	}
	return FormatXYZR
}
