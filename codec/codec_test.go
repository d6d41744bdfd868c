package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ByName("msgpack")
		assert.Error(t, err)
	})
}

func TestCodecsRoundTrip(t *testing.T) {
	type doc struct {
		Spheres []struct {
			Center [3]float64 `json:"center"`
			Radius float64    `json:"radius"`
		} `json:"spheres"`
	}

	in := doc{}
	in.Spheres = append(in.Spheres, struct {
		Center [3]float64 `json:"center"`
		Radius float64    `json:"radius"`
	}{Center: [3]float64{1, -2, 3}, Radius: 0.5})

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out doc
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}
