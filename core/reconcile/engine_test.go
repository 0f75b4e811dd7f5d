package reconcile

import (
	"errors"
	"testing"

	"locale-manager/core/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatOf(t *testing.T, n tree.Node) tree.FlatMap {
	t.Helper()
	flat, err := tree.Flatten(n)
	require.NoError(t, err)
	return flat
}

// TestRestrictToUsed covers pruning a locale file to the keys the code looks up.
func TestRestrictToUsed(t *testing.T) {
	file := tree.FlatMap{"a.b": "x", "a.c": "y", "d": "z"}
	used := tree.FlatMap{"a.b": 0}

	got, err := RestrictToUsed(file, used)
	require.NoError(t, err)

	doc, err := tree.Unflatten(got)
	require.NoError(t, err)
	assert.Equal(t, tree.Node{"a": tree.Node{"b": "x"}}, doc)
}

func TestSubtractReference(t *testing.T) {
	current := tree.FlatMap{"hello": "Hi", "bye": "Bye"}
	reference := tree.FlatMap{"hello": "Hello"}

	got, err := SubtractReference(current, reference)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"bye": "Bye"}, got)
}

func TestRestrictToTarget(t *testing.T) {
	current := tree.FlatMap{"k1": "v1", "k2": "v2"}
	target := tree.FlatMap{"k2": "old", "k3": "old"}

	got, err := RestrictToTarget(current, target)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"k2": "v2"}, got)
}

func TestPruneDeleted(t *testing.T) {
	source := tree.FlatMap{"k1": "a", "gone": "b"}
	model := tree.FlatMap{"k1": "z"}

	got, err := PruneDeleted(source, model)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"k1": "a"}, got)
}

func TestRestrict_EmptyInputs(t *testing.T) {
	got, err := Restrict(tree.FlatMap{}, tree.NewKeySet("a"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Restrict(tree.FlatMap{"a": 1}, tree.KeySet{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Subtract(tree.FlatMap{"a": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"a": 1}, got)
}

func TestRestrict_DoesNotMutateInput(t *testing.T) {
	flat := tree.FlatMap{"a": "1", "b": "2"}
	_, err := Restrict(flat, tree.NewKeySet("a"))
	require.NoError(t, err)
	assert.Len(t, flat, 2)
}

func TestPrimitives_Idempotent(t *testing.T) {
	flat := flatOf(t, tree.Node{
		"greeting": tree.Node{"hello": "Hi", "bye": "Bye"},
		"title":    "Home",
		"items":    []any{"a", "b"},
	})
	set := tree.NewKeySet("greeting.hello", "items", "unknown")

	once, err := Restrict(flat, set)
	require.NoError(t, err)
	twice, err := Restrict(once, set)
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	once, err = Subtract(flat, set)
	require.NoError(t, err)
	twice, err = Subtract(once, set)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestPrimitives_Complementary(t *testing.T) {
	flat := tree.FlatMap{"a.b": 1, "a.c": 2, "d": nil, "e.f.g": "x"}
	set := tree.NewKeySet("a.c", "d", "zzz")

	kept, err := Restrict(flat, set)
	require.NoError(t, err)
	removed, err := Subtract(flat, set)
	require.NoError(t, err)

	for key := range kept {
		_, dup := removed[key]
		assert.False(t, dup, "key %q on both sides", key)
	}

	union := tree.FlatMap{}
	for k, v := range kept {
		union[k] = v
	}
	for k, v := range removed {
		union[k] = v
	}
	assert.Equal(t, flat, union)
}

func TestPrimitives_PrefixCollision(t *testing.T) {
	tests := []struct {
		name string
		flat tree.FlatMap
		set  tree.KeySet
		path string
	}{
		{
			name: "comparison key names a node",
			flat: tree.FlatMap{"a.b": "x"},
			set:  tree.NewKeySet("a"),
			path: "a",
		},
		{
			name: "comparison key lies below a leaf",
			flat: tree.FlatMap{"a": "x"},
			set:  tree.NewKeySet("a.b.c"),
			path: "a",
		},
		{
			name: "deep leaf prefix",
			flat: tree.FlatMap{"a.b": "x"},
			set:  tree.NewKeySet("a.b.c"),
			path: "a.b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restrict(tt.flat, tt.set)
			require.ErrorIs(t, err, tree.ErrStructuralConflict)

			var conflict *tree.ConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, tt.path, conflict.Path)

			_, err = Subtract(tt.flat, tt.set)
			assert.ErrorIs(t, err, tree.ErrStructuralConflict)
		})
	}
}

func TestPrimitives_SiblingPrefixIsNotACollision(t *testing.T) {
	// "ab" shares characters with "a" but not a path segment.
	got, err := Restrict(tree.FlatMap{"a": "x", "ab": "y"}, tree.NewKeySet("abc", "ab"))
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"ab": "y"}, got)
}

func TestRestrict_PluralKeys(t *testing.T) {
	file := tree.FlatMap{
		"items.one":   "1 item",
		"items.other": "%{count} items",
		"items.few":   "few",
		"legacy":      "old",
	}
	used := tree.NewKeySet("items.zero", "items.one", "items.two", "items.few", "items.many", "items.other")

	got, err := Restrict(file, used)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{
		"items.one":   "1 item",
		"items.other": "%{count} items",
		"items.few":   "few",
	}, got)
}

func TestRun(t *testing.T) {
	subject := tree.FlatMap{"a": 1, "b": 2}
	compare := tree.NewKeySet("a")

	tests := []struct {
		recipe Recipe
		want   tree.FlatMap
	}{
		{RecipeUnused, tree.FlatMap{"a": 1}},
		{RecipeSubtractBase, tree.FlatMap{"b": 2}},
		{RecipeMaintain, tree.FlatMap{"a": 1}},
		{RecipePruneDeleted, tree.FlatMap{"a": 1}},
		{RecipeExport, tree.FlatMap{"a": 1, "b": 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.recipe), func(t *testing.T) {
			got, err := Run(tt.recipe, subject, compare)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Run("bogus", subject, compare)
	assert.ErrorIs(t, err, ErrUnknownRecipe)
}

func TestParseRecipe(t *testing.T) {
	for _, r := range Recipes {
		got, err := ParseRecipe(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRecipe("delete-everything")
	assert.ErrorIs(t, err, ErrUnknownRecipe)
}
