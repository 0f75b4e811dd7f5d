// Package usage discovers the translation keys an application looks up.
//
// A Scanner walks a source tree, greps every file with a lookup pattern and returns the
// keys it finds as a placeholder-valued flat map. Lookups that pass a count are expanded
// into one key per plural form, so a locale file keeps its plural variants.
//
// Usage:
//
//	scanner := usage.NewScanner(afero.NewOsFs(), cfg.Usage)
//	used, err := scanner.Scan(ctx)
//	// used["users.greeting"] == 0
//
// Scanner also satisfies reconcile.KeySource through its Keys method.
package usage
