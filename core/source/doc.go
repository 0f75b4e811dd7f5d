// Package source provides the current translation tree of a locale.
//
// A Source returns a locale-rooted tree, {locale: {...}}, from wherever the running
// application keeps its translations. Implementations:
//
//   - Files reads every "<locale>.<ext>" file below a list of directories and deep
//     merges them in path order.
//   - Database reads locale/key/value rows from the translations table through GORM.
//   - Bundle loads go-i18n message files and turns each message, or each plural form of
//     a message, into a leaf.
//   - Cached wraps any Source with a TTL cache and singleflight.
//
// Sources are always passed explicitly; New builds the one selected by configuration:
//
//	src, err := source.New(ctx, cfg.Source, source.Deps{Fs: afero.NewOsFs(), DB: db})
//	spec := &reconcile.Spec{
//	    Recipe:  reconcile.RecipeMaintain,
//	    Locale:  "en",
//	    Subject: source.Input(src, "en"),
//	    Compare: reconcile.DocumentKeys(target),
//	    Output:  target,
//	}
package source
