package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFormat tags every malformed-input failure, so callers can tell a
// bad file (skip it, keep going) from an I/O error. Wrap checks go
// through errors.Is.
var ErrFormat = errors.New("invalid legacy mesh")

// Parse reads and decodes one legacy mesh file.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("legacy: parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a legacy mesh document from raw JSON bytes.
// A missing scale defaults to 1.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Scale == 0 {
		doc.Scale = 1
	}
	if n := len(doc.Vertices); n%3 != 0 {
		return nil, fmt.Errorf("%w: vertex array length %d is not a multiple of 3", ErrFormat, n)
	}
	if n := len(doc.Normals); n%3 != 0 {
		return nil, fmt.Errorf("%w: normal array length %d is not a multiple of 3", ErrFormat, n)
	}
	for i, ch := range doc.UVs {
		if len(ch)%2 != 0 {
			return nil, fmt.Errorf("%w: uv channel %d length %d is not a multiple of 2", ErrFormat, i, len(ch))
		}
	}
	return &doc, nil
}
