package setio

import (
	"fmt"
	"io"

	"github.com/hupe1980/volgrid/codec"
	"github.com/hupe1980/volgrid/geom"
)

// Sphere is one entry of the JSON document format.
type Sphere struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// Document is the JSON dataset format:
//
//	{
//	  "grid_spacing": 0.1,
//	  "spheres": [
//	    {"center": [0, 0, 0], "radius": 1.0}
//	  ]
//	}
//
// grid_spacing is optional; when present, callers may use it as the default
// spacing for the dataset.
type Document struct {
	GridSpacing float64  `json:"grid_spacing,omitempty"`
	Spheres     []Sphere `json:"spheres"`
}

func parseJSON[T geom.Float](r io.Reader, cd codec.Codec) (*Dataset[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("setio: read: %w", err)
	}

	var doc Document
	if err := cd.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("setio: decode json: %w", err)
	}

	d := &Dataset[T]{
		Coords:      make([]T, 0, 3*len(doc.Spheres)),
		Radii:       make([]T, 0, len(doc.Spheres)),
		GridSpacing: T(doc.GridSpacing),
	}
	for _, s := range doc.Spheres {
		d.Coords = append(d.Coords, T(s.Center[0]), T(s.Center[1]), T(s.Center[2]))
		d.Radii = append(d.Radii, T(s.Radius))
	}

	return d, nil
}
