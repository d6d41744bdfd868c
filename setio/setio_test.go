package setio

import (
	"bytes"
	"compress/gzip"
	"context"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/volgrid/blobstore"
	"github.com/hupe1980/volgrid/codec"
	"github.com/hupe1980/volgrid/resource"
)

const sampleXYZR = `# two spheres
0 0 0 1.0

1.5 0 0 0.5
`

const sampleJSON = `{
  "grid_spacing": 0.25,
  "spheres": [
    {"center": [0, 0, 0], "radius": 1.0},
    {"center": [1.5, 0, 0], "radius": 0.5}
  ]
}`

func TestLoadXYZR(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		d, err := Load[float64](context.Background(), strings.NewReader(sampleXYZR), "set.xyzr")
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 0, 0, 1.5, 0, 0}, d.Coords)
		assert.Equal(t, []float64{1, 0.5}, d.Radii)
		assert.Zero(t, d.GridSpacing)

		_, err = d.SphereSet()
		assert.NoError(t, err)
	})

	t.Run("float32", func(t *testing.T) {
		d, err := Load[float32](context.Background(), strings.NewReader(sampleXYZR), "set.xyzr")
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 0.5}, d.Radii)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := Load[float64](context.Background(), strings.NewReader("0 0 0\n"), "set.xyzr")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := Load[float64](context.Background(), strings.NewReader("0 0 zero 1\n"), "set.xyzr")
		assert.Error(t, err)
	})
}

func TestLoadJSON(t *testing.T) {
	t.Run("default codec", func(t *testing.T) {
		d, err := Load[float64](context.Background(), strings.NewReader(sampleJSON), "set.json")
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 0, 0, 1.5, 0, 0}, d.Coords)
		assert.Equal(t, []float64{1, 0.5}, d.Radii)
		assert.Equal(t, 0.25, d.GridSpacing)
	})

	t.Run("stdlib codec", func(t *testing.T) {
		d, err := Load[float64](context.Background(), strings.NewReader(sampleJSON), "set.json",
			WithCodec(codec.JSON{}))
		require.NoError(t, err)
		assert.Len(t, d.Radii, 2)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load[float64](context.Background(), strings.NewReader("{"), "set.json")
		assert.Error(t, err)
	})
}

func TestLoadFormatSelection(t *testing.T) {
	t.Run("forced format wins over extension", func(t *testing.T) {
		d, err := Load[float64](context.Background(), strings.NewReader(sampleXYZR), "data.txt",
			WithFormat(FormatXYZR))
		require.NoError(t, err)
		assert.Len(t, d.Radii, 2)
	})

	t.Run("unknown extension falls back to xyzr", func(t *testing.T) {
		d, err := Load[float64](context.Background(), strings.NewReader(sampleXYZR), "data.txt")
		require.NoError(t, err)
		assert.Len(t, d.Radii, 2)
	})
}

func TestLoadCompressed(t *testing.T) {
	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(sampleXYZR))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		d, err := Load[float64](context.Background(), &buf, "set.xyzr.gz")
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0.5}, d.Radii)
	})

	t.Run("zstd json", func(t *testing.T) {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write([]byte(sampleJSON))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		d, err := Load[float64](context.Background(), &buf, "set.json.zst")
		require.NoError(t, err)
		assert.Equal(t, 0.25, d.GridSpacing)
	})

	t.Run("lz4", func(t *testing.T) {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		_, err := zw.Write([]byte(sampleXYZR))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		d, err := Load[float64](context.Background(), &buf, "set.xyzr.lz4")
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0.5}, d.Radii)
	})
}

func TestLoadBlob(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("sets/demo.xyzr", []byte(sampleXYZR))

	d, err := LoadBlob[float64](context.Background(), store, "sets/demo.xyzr")
	require.NoError(t, err)
	assert.Len(t, d.Radii, 2)

	_, err = LoadBlob[float64](context.Background(), store, "sets/missing.xyzr")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestLoadRateLimited(t *testing.T) {
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	d, err := Load[float64](context.Background(), strings.NewReader(sampleXYZR), "set.xyzr",
		WithResourceController(rc))
	require.NoError(t, err)
	assert.Len(t, d.Radii, 2)
}
