// Package locales exposes locale reconciliation over HTTP and to the CLI.
//
// The Service composes the collaborators configured for the process: the store holding
// locale files, the source of the current translation tree and the usage scanner. It
// turns a recipe request into a reconcile.Spec and runs it.
//
// # Recipes
//
//   - unused: keep only the keys of the target file that the application looks up.
//   - subtract-base: write the current tree minus the keys of the base file.
//   - maintain: write the current values of the keys already present in the target.
//   - prune-deleted: drop the keys of the source file that the model file no longer has.
//   - export: write the current tree as is.
//
// # HTTP Endpoints
//
//   - GET /locales/:locale/keys : Flattened current tree (supports ?prefix=users).
//   - POST /locales/:locale/reconcile : Runs a recipe; {"dry_run": true} only plans.
package locales
