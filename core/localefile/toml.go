package localefile

import (
	"bytes"
	"fmt"

	"locale-manager/core/tree"

	"github.com/pelletier/go-toml/v2"
)

// TOML is the TOML locale codec. TOML has no null, so nil leaves are not written.
type TOML struct{}

func (TOML) Format() string    { return "toml" }
func (TOML) Extension() string { return "toml" }

func (TOML) Decode(data []byte) (tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.Node{}, nil
	}

	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	n, _ := tree.FromMap(m)
	return n, nil
}

func (TOML) Encode(n tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(plain(n, true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
