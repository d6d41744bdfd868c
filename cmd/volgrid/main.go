// Command volgrid estimates the union volume of a sphere dataset.
//
// Usage:
//
//	volgrid -input spheres.xyzr -spacing 0.1
//	volgrid -input s3://bucket/sets/protein.xyzr.zst -precision 32
//
// Datasets may be XYZR text or JSON documents, optionally gzip/zstd/lz4
// compressed. s3:// inputs are read from S3-compatible storage configured
// via VOLGRID_S3_ENDPOINT, VOLGRID_S3_ACCESS_KEY and VOLGRID_S3_SECRET_KEY.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	minioclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/volgrid"
	"github.com/hupe1980/volgrid/blobstore"
	miniostore "github.com/hupe1980/volgrid/blobstore/minio"
	"github.com/hupe1980/volgrid/geom"
	"github.com/hupe1980/volgrid/resource"
	"github.com/hupe1980/volgrid/setio"
)

var (
	input     = flag.String("input", "", "Dataset path or s3://bucket/key URL (required)")
	spacing   = flag.Float64("spacing", 0, "Grid spacing in world units (0 = dataset default or 0.1)")
	precision = flag.Int("precision", 64, "Floating point precision, 32 or 64")
	format    = flag.String("format", "auto", "Dataset format: auto, xyzr or json")
	memLimit  = flag.Int64("mem-limit", 0, "Voxel buffer memory limit in bytes (0 = unlimited)")
	ioLimit   = flag.Int64("io-limit", 0, "Dataset read throughput limit in bytes/sec (0 = unlimited)")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := volgrid.NewTextLogger(level)

	rc := resource.NewController(resource.Config{
		GridMemoryLimitBytes: *memLimit,
		IOLimitBytesPerSec:   *ioLimit,
	})

	var run func(ctx context.Context, logger *volgrid.Logger, rc *resource.Controller) (float64, error)
	switch *precision {
	case 32:
		run = estimate[float32]
	case 64:
		run = estimate[float64]
	default:
		fmt.Fprintf(os.Stderr, "volgrid: invalid precision %d, want 32 or 64\n", *precision)
		os.Exit(2)
	}

	vol, err := run(context.Background(), logger, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "volgrid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%g\n", vol)
}

func estimate[T geom.Float](ctx context.Context, logger *volgrid.Logger, rc *resource.Controller) (float64, error) {
	d, err := loadDataset[T](ctx, rc)
	if err != nil {
		return 0, err
	}

	h := T(*spacing)
	if h == 0 {
		h = d.GridSpacing
	}
	if h == 0 {
		h = T(volgrid.DefaultGridSpacing)
	}

	est := volgrid.New(
		volgrid.WithGridSpacing(h),
		volgrid.WithLogger[T](logger),
		volgrid.WithResourceController[T](rc),
	)

	vol, err := est.Estimate(d.Coords, d.Radii)
	return float64(vol), err
}

func loadDataset[T geom.Float](ctx context.Context, rc *resource.Controller) (*setio.Dataset[T], error) {
	opts := []setio.Option{
		setio.WithFormat(setio.Format(*format)),
		setio.WithResourceController(rc),
	}

	if bucket, key, ok := strings.Cut(strings.TrimPrefix(*input, "s3://"), "/"); ok && strings.HasPrefix(*input, "s3://") {
		store, err := s3Store(bucket)
		if err != nil {
			return nil, err
		}
		return setio.LoadBlob[T](ctx, store, key, opts...)
	}

	return setio.LoadFile[T](ctx, *input, opts...)
}

func s3Store(bucket string) (blobstore.Store, error) {
	endpoint := os.Getenv("VOLGRID_S3_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("VOLGRID_S3_ENDPOINT is not set")
	}

	client, err := minioclient.New(endpoint, &minioclient.Options{
		Creds: credentials.NewStaticV4(
			os.Getenv("VOLGRID_S3_ACCESS_KEY"),
			os.Getenv("VOLGRID_S3_SECRET_KEY"),
			"",
		),
		Secure: os.Getenv("VOLGRID_S3_INSECURE") == "",
	})
	if err != nil {
		return nil, err
	}

	return miniostore.NewStore(client, bucket, ""), nil
}
