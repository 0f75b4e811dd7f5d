package reconcile

import (
	"context"
	"fmt"

	"locale-manager/core/tree"
)

// Recipe names a reconciliation policy.
type Recipe string

const (
	// RecipeUnused keeps only the keys used by the application.
	RecipeUnused Recipe = "unused"
	// RecipeSubtractBase removes the keys of a base/reference tree.
	RecipeSubtractBase Recipe = "subtract-base"
	// RecipeMaintain keeps only the keys already present in the target.
	RecipeMaintain Recipe = "maintain"
	// RecipePruneDeleted removes the keys that no longer exist in a model tree.
	RecipePruneDeleted Recipe = "prune-deleted"
	// RecipeExport writes the subject unchanged.
	RecipeExport Recipe = "export"
)

// Recipes lists every known recipe in a stable order.
var Recipes = []Recipe{RecipeUnused, RecipeSubtractBase, RecipeMaintain, RecipePruneDeleted, RecipeExport}

// ParseRecipe validates a recipe name.
func ParseRecipe(name string) (Recipe, error) {
	for _, r := range Recipes {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
}

// Operation is the set primitive a recipe resolves to.
type Operation string

const (
	OperationRestrict Operation = "restrict"
	OperationSubtract Operation = "subtract"
	OperationIdentity Operation = "identity"
)

// Operation returns the primitive backing r.
func (r Recipe) Operation() Operation {
	switch r {
	case RecipeSubtractBase:
		return OperationSubtract
	case RecipeExport:
		return OperationIdentity
	default:
		return OperationRestrict
	}
}

// Input supplies a locale-rooted document for one side of a reconciliation.
type Input interface {
	Load(ctx context.Context) (tree.Node, error)
}

// InputFunc adapts a function to Input.
type InputFunc func(ctx context.Context) (tree.Node, error)

// Load calls f.
func (f InputFunc) Load(ctx context.Context) (tree.Node, error) {
	return f(ctx)
}

// KeySource supplies the comparison key set for a locale.
type KeySource interface {
	Keys(ctx context.Context, locale string) (tree.KeySet, error)
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func(ctx context.Context, locale string) (tree.KeySet, error)

// Keys calls f.
func (f KeySourceFunc) Keys(ctx context.Context, locale string) (tree.KeySet, error) {
	return f(ctx, locale)
}

// DocumentKeys projects an Input onto the flattened keys below the locale root.
func DocumentKeys(in Input) KeySource {
	return KeySourceFunc(func(ctx context.Context, locale string) (tree.KeySet, error) {
		doc, err := in.Load(ctx)
		if err != nil {
			return nil, err
		}
		flat, err := tree.FlattenLocale(doc, locale)
		if err != nil {
			return nil, err
		}
		return flat.KeySet(), nil
	})
}

// FlatKeys adapts a flat-map producer, such as a usage scanner, to KeySource.
func FlatKeys(fn func(ctx context.Context, locale string) (tree.FlatMap, error)) KeySource {
	return KeySourceFunc(func(ctx context.Context, locale string) (tree.KeySet, error) {
		flat, err := fn(ctx, locale)
		if err != nil {
			return nil, err
		}
		return flat.KeySet(), nil
	})
}

// Output receives the reconciled, locale-rooted document.
type Output interface {
	Write(ctx context.Context, doc tree.Node) error
}

// Spec defines a single reconciliation: which recipe, for which locale, and where the
// subject, the comparison set and the result live.
type Spec struct {
	// Recipe selects the policy.
	Recipe Recipe

	// Locale is the root segment of every document involved.
	Locale string

	// Subject provides the tree being filtered.
	Subject Input

	// Compare provides the comparison key set. Unused by RecipeExport.
	Compare KeySource

	// Output receives the result on Apply.
	Output Output
}

// Validate checks that the spec carries what its recipe needs.
func (s *Spec) Validate() error {
	if _, err := ParseRecipe(string(s.Recipe)); err != nil {
		return err
	}
	if _, err := tree.NewKey(s.Locale); err != nil {
		return fmt.Errorf("%w: locale: %w", ErrInvalidSpec, err)
	}
	if s.Subject == nil {
		return fmt.Errorf("%w: %s requires a subject", ErrInvalidSpec, s.Recipe)
	}
	if s.Compare == nil && s.Recipe.Operation() != OperationIdentity {
		return fmt.Errorf("%w: %s requires a comparison source", ErrInvalidSpec, s.Recipe)
	}
	return nil
}

// ReconcilePlan contains the outcome of a reconciliation before it is written.
type ReconcilePlan struct {
	// Recipe is the policy that produced the plan.
	Recipe Recipe `json:"recipe"`

	// Locale is the root segment the result will be written under.
	Locale string `json:"locale"`

	// Result holds the surviving entries.
	Result tree.FlatMap `json:"result"`

	// Dropped lists the subject keys removed by the recipe, sorted.
	Dropped []string `json:"dropped"`

	// Missing lists comparison keys absent from the subject, sorted.
	Missing []string `json:"missing"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// SubjectKeys is the number of leaves in the subject.
	SubjectKeys int `json:"subject_keys"`

	// CompareKeys is the size of the comparison set.
	CompareKeys int `json:"compare_keys"`

	// Kept is the number of entries in the result.
	Kept int `json:"kept"`

	// Dropped is the number of subject entries removed.
	Dropped int `json:"dropped"`

	// Missing is the number of comparison keys without a subject entry.
	Missing int `json:"missing"`
}

// ReconcileOptions controls whether Apply writes.
type ReconcileOptions struct {
	// DryRun prevents writing if true.
	DryRun bool

	// Confirmed indicates the caller accepted the write.
	// If false, nothing is written regardless of DryRun.
	Confirmed bool
}
