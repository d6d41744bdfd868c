package volgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/volgrid/resource"
)

const unitSphereVolume = 4.0 / 3.0 * math.Pi

func TestVolumeSingleSphere(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		vol, err := VolumeFromSpheres([]float64{0, 0, 0}, []float64{1}, 0.1)
		require.NoError(t, err)
		assert.InEpsilon(t, unitSphereVolume, vol, 0.05)
	})

	t.Run("float32", func(t *testing.T) {
		vol, err := VolumeFromSpheres([]float32{0, 0, 0}, []float32{1}, 0.1)
		require.NoError(t, err)
		assert.InEpsilon(t, unitSphereVolume, float64(vol), 0.05)
	})

	t.Run("default spacing", func(t *testing.T) {
		vol, err := New[float64]().Estimate([]float64{0, 0, 0}, []float64{1})
		require.NoError(t, err)
		assert.InEpsilon(t, unitSphereVolume, vol, 0.05)
	})
}

func TestVolumeConvergesWithSpacing(t *testing.T) {
	coarse, err := VolumeFromSpheres([]float64{0, 0, 0}, []float64{1}, 0.4)
	require.NoError(t, err)
	fine, err := VolumeFromSpheres([]float64{0, 0, 0}, []float64{1}, 0.05)
	require.NoError(t, err)

	errCoarse := math.Abs(coarse - unitSphereVolume)
	errFine := math.Abs(fine - unitSphereVolume)
	assert.Less(t, errFine, errCoarse)
	assert.InEpsilon(t, unitSphereVolume, fine, 0.02)
}

func TestVolumeNeverExceedsSumOfSpheres(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		radii  []float64
	}{
		{"single", []float64{0, 0, 0}, []float64{1}},
		{"overlapping pair", []float64{0, 0, 0, 0.5, 0.5, 0.5}, []float64{1, 0.8}},
		{"cluster", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}, []float64{0.7, 0.7, 0.7, 0.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol, err := VolumeFromSpheres(tt.coords, tt.radii, 0.1)
			require.NoError(t, err)

			sum := 0.0
			for _, r := range tt.radii {
				sum += unitSphereVolume * r * r * r
			}
			assert.GreaterOrEqual(t, vol, 0.0)
			// allow the rasterization error of the upper bound itself
			assert.LessOrEqual(t, vol, sum*1.05)
		})
	}
}

func TestVolumeDuplicateSpheresIdempotent(t *testing.T) {
	single, err := VolumeFromSpheres([]float64{0.2, -0.3, 0.4}, []float64{1}, 0.1)
	require.NoError(t, err)

	double, err := VolumeFromSpheres(
		[]float64{0.2, -0.3, 0.4, 0.2, -0.3, 0.4},
		[]float64{1, 1},
		0.1,
	)
	require.NoError(t, err)

	assert.Equal(t, single, double)
}

func TestVolumeDisjointSpheresAdditive(t *testing.T) {
	a, err := VolumeFromSpheres([]float64{0, 0, 0}, []float64{1}, 0.1)
	require.NoError(t, err)
	b, err := VolumeFromSpheres([]float64{10, 0, 0}, []float64{0.5}, 0.1)
	require.NoError(t, err)

	both, err := VolumeFromSpheres([]float64{0, 0, 0, 10, 0, 0}, []float64{1, 0.5}, 0.1)
	require.NoError(t, err)

	assert.InEpsilon(t, a+b, both, 0.02)
}

func TestVolumeScaleInvariance(t *testing.T) {
	// Scaling by a power of two is exact in floating point, so the voxel
	// counts match exactly and the volumes differ by exactly k^3.
	coords := []float64{0.1, -0.2, 0.3, 1.1, 0.4, -0.5}
	radii := []float64{0.9, 0.6}

	vol, err := VolumeFromSpheres(coords, radii, 0.1)
	require.NoError(t, err)

	scaled := make([]float64, len(coords))
	for i, c := range coords {
		scaled[i] = 2 * c
	}
	scaledRadii := []float64{2 * radii[0], 2 * radii[1]}

	vol2, err := VolumeFromSpheres(scaled, scaledRadii, 0.2)
	require.NoError(t, err)

	assert.InEpsilon(t, 8*vol, vol2, 1e-12)
}

func TestPrecisionBackendsAgreeApproximately(t *testing.T) {
	coords64 := []float64{0, 0, 0, 1, 0.5, -0.5}
	radii64 := []float64{1, 0.75}

	coords32 := []float32{0, 0, 0, 1, 0.5, -0.5}
	radii32 := []float32{1, 0.75}

	v64, err := VolumeFromSpheres(coords64, radii64, 0.1)
	require.NoError(t, err)
	v32, err := VolumeFromSpheres(coords32, radii32, float32(0.1))
	require.NoError(t, err)

	// Same algorithm, own rounding each: close but not byte-identical.
	assert.InEpsilon(t, v64, float64(v32), 0.01)
}

func TestEstimateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		radii  []float64
		h      float64
	}{
		{"zero spheres", nil, nil, 0.1},
		{"zero spacing", []float64{0, 0, 0}, []float64{1}, 0},
		{"negative spacing", []float64{0, 0, 0}, []float64{1}, -0.1},
		{"count mismatch", []float64{0, 0, 0, 1}, []float64{1}, 0.1},
		{"negative radius", []float64{0, 0, 0}, []float64{-1}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VolumeFromSpheres(tt.coords, tt.radii, tt.h)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrResourceExhausted)
		})
	}
}

func TestEstimateResourceExhausted(t *testing.T) {
	t.Run("extent overflow", func(t *testing.T) {
		_, err := VolumeFromSpheres(
			[]float64{-1e18, -1e18, -1e18, 1e18, 1e18, 1e18},
			[]float64{1, 1},
			0.1,
		)
		assert.ErrorIs(t, err, ErrResourceExhausted)
	})

	t.Run("memory limit", func(t *testing.T) {
		rc := resource.NewController(resource.Config{GridMemoryLimitBytes: 64})
		est := New(
			WithGridSpacing(0.1),
			WithResourceController[float64](rc),
		)

		_, err := est.Estimate([]float64{0, 0, 0}, []float64{1})
		assert.ErrorIs(t, err, ErrResourceExhausted)

		var tooLarge *ErrGridTooLarge
		assert.ErrorAs(t, err, &tooLarge)

		// the rejected reservation is fully released
		assert.Equal(t, int64(0), rc.GridMemoryUsage())
	})

	t.Run("memory released after success", func(t *testing.T) {
		rc := resource.NewController(resource.Config{GridMemoryLimitBytes: 1 << 30})
		est := New(
			WithGridSpacing(0.1),
			WithResourceController[float64](rc),
		)

		_, err := est.Estimate([]float64{0, 0, 0}, []float64{1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), rc.GridMemoryUsage())
	})
}

func TestEstimatorMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	est := New(
		WithGridSpacing(0.1),
		WithMetricsCollector[float64](mc),
	)

	_, err := est.Estimate([]float64{0, 0, 0}, []float64{1})
	require.NoError(t, err)

	_, err = est.Estimate(nil, nil)
	require.Error(t, err)

	assert.Equal(t, int64(2), mc.EstimateCount.Load())
	assert.Equal(t, int64(1), mc.EstimateErrors.Load())
}

func TestUniformRadii(t *testing.T) {
	radii := UniformRadii(3, 1.4)
	assert.Equal(t, []float64{1.4, 1.4, 1.4}, radii)
}
