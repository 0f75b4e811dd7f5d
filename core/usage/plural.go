package usage

import "locale-manager/core/tree"

// PluralForms are the CLDR plural categories a count-aware lookup may resolve to.
var PluralForms = []string{"zero", "one", "two", "few", "many", "other"}

// Placeholder is the value stored for every discovered key.
const Placeholder = 0

// ExpandPlural adds one placeholder entry per plural form below key.
func ExpandPlural(flat tree.FlatMap, key string) {
	for _, form := range PluralForms {
		flat[key+tree.Delimiter+form] = Placeholder
	}
}
