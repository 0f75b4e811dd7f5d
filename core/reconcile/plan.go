package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"locale-manager/core/tree"

	"golang.org/x/sync/errgroup"
)

// Plan loads the inputs of spec and computes the reconciled result.
// It does NOT write anything; use Apply for that.
func Plan(ctx context.Context, spec *Spec) (*ReconcilePlan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	subject, compare, err := loadInputs(ctx, spec)
	if err != nil {
		return nil, err
	}

	result, err := Run(spec.Recipe, subject, compare)
	if err != nil {
		return nil, err
	}

	return buildPlan(spec, subject, compare, result), nil
}

// Apply writes the plan result through spec.Output.
// It returns whether anything was written. Requires opts.Confirmed=true and
// opts.DryRun=false to actually write.
func Apply(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (bool, error) {
	// Safety check: do not write if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return false, nil
	}
	if spec.Output == nil {
		return false, fmt.Errorf("%w: no output configured", ErrInvalidSpec)
	}

	doc, err := Document(plan)
	if err != nil {
		return false, err
	}

	if err := spec.Output.Write(ctx, doc); err != nil {
		return false, fmt.Errorf("failed to write %s result: %w", plan.Recipe, err)
	}
	return true, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, bool, error) {
	plan, err := Plan(ctx, spec)
	if err != nil {
		return nil, false, err
	}

	written, err := Apply(ctx, spec, plan, opts)
	return plan, written, err
}

// Document rebuilds the nested, locale-rooted tree of a plan result.
// An empty result yields an empty node under the locale.
func Document(plan *ReconcilePlan) (tree.Node, error) {
	node, err := tree.Unflatten(plan.Result)
	if err != nil {
		return nil, err
	}
	return tree.Root(plan.Locale, node), nil
}

// loadInputs loads the subject and the comparison set concurrently. The first failure
// cancels the other load.
func loadInputs(ctx context.Context, spec *Spec) (tree.FlatMap, tree.KeySet, error) {
	var (
		subjectDoc tree.Node
		compare    tree.KeySet
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if subjectDoc, err = spec.Subject.Load(gctx); err != nil {
			return sourceError("subject", err)
		}
		return nil
	})

	if spec.Compare != nil && spec.Recipe.Operation() != OperationIdentity {
		g.Go(func() error {
			var err error
			if compare, err = spec.Compare.Keys(gctx, spec.Locale); err != nil {
				return sourceError("comparison", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	subject, err := tree.FlattenLocale(subjectDoc, spec.Locale)
	if err != nil {
		return nil, nil, err
	}
	if compare == nil {
		compare = tree.KeySet{}
	}
	return subject, compare, nil
}

// sourceError wraps load failures in ErrMissingSource. Malformed trees keep their own
// error class.
func sourceError(side string, err error) error {
	if errors.Is(err, tree.ErrStructuralConflict) || errors.Is(err, tree.ErrInvalidKey) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrMissingSource, side, err)
}

func buildPlan(spec *Spec, subject tree.FlatMap, compare tree.KeySet, result tree.FlatMap) *ReconcilePlan {
	dropped := make([]string, 0)
	for key := range subject {
		if _, ok := result[key]; !ok {
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)

	missing := make([]string, 0)
	for key := range compare {
		if _, ok := subject[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)

	return &ReconcilePlan{
		Recipe:  spec.Recipe,
		Locale:  spec.Locale,
		Result:  result,
		Dropped: dropped,
		Missing: missing,
		Summary: PlanSummary{
			SubjectKeys: len(subject),
			CompareKeys: len(compare),
			Kept:        len(result),
			Dropped:     len(dropped),
			Missing:     len(missing),
		},
	}
}
