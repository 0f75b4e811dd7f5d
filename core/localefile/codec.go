package localefile

import (
	"fmt"
	"path/filepath"
	"strings"

	"locale-manager/core/tree"
)

// Codec converts between bytes and locale trees.
type Codec interface {
	// Format is the canonical format name ("yaml", "toml", "json").
	Format() string
	// Extension is the file extension written for the format, without the dot.
	Extension() string
	// Decode parses data into a tree. Empty input yields an empty Node.
	Decode(data []byte) (tree.Node, error)
	// Encode serializes n with sorted keys at every depth.
	Encode(n tree.Node) ([]byte, error)
}

var codecs = map[string]Codec{
	"yaml": YAML{},
	"yml":  YAML{},
	"toml": TOML{},
	"json": JSON{},
}

// CodecFor returns the codec for a format name or for the extension of a file path.
func CodecFor(formatOrPath string) (Codec, error) {
	name := strings.ToLower(strings.TrimSpace(formatOrPath))
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimPrefix(ext, ".")
	}
	if c, ok := codecs[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, formatOrPath)
}

// plain converts a tree into nested map[string]any values for encoders that only
// understand plain maps. Nil leaves are kept unless dropNil is set.
func plain(n tree.Node, dropNil bool) map[string]any {
	out := make(map[string]any, len(n))
	for k, v := range n {
		if child, ok := tree.AsNode(v); ok {
			out[k] = plain(child, dropNil)
			continue
		}
		if v == nil && dropNil {
			continue
		}
		out[k] = v
	}
	return out
}
