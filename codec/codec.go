// Package codec centralizes encoding of sphere dataset documents.
//
// The JSON dataset format is decoded through a Codec so callers can trade
// the standard library's encoder for a faster drop-in.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "go-json":
		return GoJSON{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
