package reconcile

import (
	"fmt"
	"strings"

	"locale-manager/core/tree"
)

// Restrict returns the entries of flat whose key is in keep.
// Keys of keep that are absent from flat are ignored.
func Restrict(flat tree.FlatMap, keep tree.KeySet) (tree.FlatMap, error) {
	if err := checkCollisions(flat, keep); err != nil {
		return nil, err
	}

	out := make(tree.FlatMap)
	for key, value := range flat {
		if keep.Has(key) {
			out[key] = value
		}
	}
	return out, nil
}

// Subtract returns the entries of flat whose key is not in remove.
// Keys of remove that are absent from flat are ignored.
func Subtract(flat tree.FlatMap, remove tree.KeySet) (tree.FlatMap, error) {
	if err := checkCollisions(flat, remove); err != nil {
		return nil, err
	}

	out := make(tree.FlatMap, len(flat))
	for key, value := range flat {
		if !remove.Has(key) {
			out[key] = value
		}
	}
	return out, nil
}

// RestrictToUsed keeps the entries of a locale file that the application looks up.
// used is the placeholder-valued flat map produced by usage discovery.
func RestrictToUsed(file, used tree.FlatMap) (tree.FlatMap, error) {
	return Restrict(file, used.KeySet())
}

// SubtractReference removes the keys of a base/reference tree from current.
func SubtractReference(current, reference tree.FlatMap) (tree.FlatMap, error) {
	return Subtract(current, reference.KeySet())
}

// RestrictToTarget keeps the entries of current whose key already exists in target.
func RestrictToTarget(current, target tree.FlatMap) (tree.FlatMap, error) {
	return Restrict(current, target.KeySet())
}

// PruneDeleted drops the entries of source whose key no longer exists in model.
func PruneDeleted(source, model tree.FlatMap) (tree.FlatMap, error) {
	return Restrict(source, model.KeySet())
}

// Run applies the primitive behind recipe to subject and compare.
func Run(recipe Recipe, subject tree.FlatMap, compare tree.KeySet) (tree.FlatMap, error) {
	if _, err := ParseRecipe(string(recipe)); err != nil {
		return nil, err
	}

	switch recipe.Operation() {
	case OperationSubtract:
		return Subtract(subject, compare)
	case OperationIdentity:
		return subject.Clone(), nil
	default:
		return Restrict(subject, compare)
	}
}

// checkCollisions rejects comparison keys that name a node of flat, or that lie below
// one of its leaves. Exact matches and unrelated keys pass.
func checkCollisions(flat tree.FlatMap, set tree.KeySet) error {
	var nodes tree.KeySet
	for _, key := range set.Sorted() {
		if _, ok := flat[key]; ok {
			continue
		}

		if nodes == nil {
			nodes = flat.Prefixes()
		}
		if nodes.Has(key) {
			return &tree.ConflictError{Path: key, Reason: "comparison key names a node of the subject"}
		}

		for i := strings.LastIndex(key, tree.Delimiter); i > 0; i = strings.LastIndex(key[:i], tree.Delimiter) {
			if _, ok := flat[key[:i]]; ok {
				return &tree.ConflictError{
					Path:   key[:i],
					Reason: fmt.Sprintf("subject leaf is a prefix of comparison key %q", key),
				}
			}
		}
	}
	return nil
}
