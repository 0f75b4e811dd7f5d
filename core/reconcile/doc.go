// Package reconcile implements set-style reconciliation of locale key trees.
//
// Every reconciliation compares the flattened key space of a subject tree with a
// comparison key set and keeps or drops subject entries accordingly. Two primitives
// carry all of the logic:
//
//   - Restrict keeps the subject entries whose key is in the comparison set.
//   - Subtract keeps the subject entries whose key is NOT in the comparison set.
//
// # Recipes
//
// The named recipes are single calls to one of the primitives, parameterized by where
// the subject and the comparison set come from:
//
//   - RecipeUnused: target file restricted to the keys used by the application.
//   - RecipeSubtractBase: current translations minus the keys of a base file.
//   - RecipeMaintain: current translations restricted to the keys already in the target.
//   - RecipePruneDeleted: source file restricted to the keys of a model file.
//   - RecipeExport: current translations written as-is.
//
// # Plan and Apply
//
// Plan loads the subject and the comparison set concurrently, runs the recipe and
// returns a ReconcilePlan with the surviving entries, the dropped keys and a summary.
// Apply unflattens the result under the locale root and hands it to the Output. Like
// every destructive operation in this module it only writes when the options are
// confirmed and not a dry run.
//
// # Errors
//
// Comparison keys missing from the subject are ignored. A comparison key that is a
// path prefix of a subject key (or the other way around) is reported as
// tree.ErrStructuralConflict. Inputs that can not be loaded are wrapped in
// ErrMissingSource. An empty result is not an error: it is written as an empty locale
// root.
//
// The package performs no logging and no retries; callers decide what to report.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Recipe:  reconcile.RecipeMaintain,
//	    Locale:  "en",
//	    Subject: source.Input(src, "en"),
//	    Compare: reconcile.DocumentKeys(target),
//	    Output:  target,
//	}
//	plan, err := reconcile.Plan(ctx, spec)
//	written, err := reconcile.Apply(ctx, spec, plan, reconcile.ReconcileOptions{Confirmed: true})
package reconcile
