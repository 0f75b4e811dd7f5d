package localefile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"locale-manager/core/tree"
)

// JSON is the JSON locale codec. Numbers are kept as json.Number so they round-trip
// without float conversion.
type JSON struct{}

func (JSON) Format() string    { return "json" }
func (JSON) Extension() string { return "json" }

func (JSON) Decode(data []byte) (tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.Node{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	if v == nil {
		return tree.Node{}, nil
	}
	n, ok := tree.FromMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: document root is not an object", ErrInvalidFile)
	}
	return n, nil
}

// Encode relies on encoding/json sorting map keys.
func (JSON) Encode(n tree.Node) ([]byte, error) {
	data, err := json.MarshalIndent(plain(n, false), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
