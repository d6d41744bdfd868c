package setio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/volgrid/geom"
)

// parseXYZR reads "x y z r" lines. Blank lines and lines starting with '#'
// are skipped. Values are parsed at the bit size of T, so the float32
// pipeline rounds decimal input once, not twice.
func parseXYZR[T geom.Float](r io.Reader) (*Dataset[T], error) {
	bitSize := geom.BitSize[T]()

	d := &Dataset[T]{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("setio: line %d: expected 4 fields \"x y z r\", got %d", lineNo, len(fields))
		}

		vals := make([]T, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, bitSize)
			if err != nil {
				return nil, fmt.Errorf("setio: line %d: field %d: %w", lineNo, i+1, err)
			}
			vals[i] = T(v)
		}

		d.Coords = append(d.Coords, vals[0], vals[1], vals[2])
		d.Radii = append(d.Radii, vals[3])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("setio: read: %w", err)
	}

	return d, nil
}
