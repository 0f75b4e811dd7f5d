package localefile

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// strippedTags are the explicit tags locale loaders reject.
var strippedTags = map[string]bool{
	"!!null": true,
	"!!map":  true,
	"!!omap": true,
}

// StripTypeTags removes serializer type tags such as "!!null" or "!ruby/object:Hash" from
// n and its descendants. Only node tags are cleared, scalar values are never rewritten.
func StripTypeTags(n *yaml.Node) {
	if n == nil {
		return
	}
	if strippedTags[n.Tag] || strings.HasPrefix(n.Tag, "!ruby/") {
		n.Tag = ""
	}
	for _, child := range n.Content {
		StripTypeTags(child)
	}
}
