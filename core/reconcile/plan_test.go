package reconcile

import (
	"context"
	"errors"
	"testing"

	"locale-manager/core/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockOutput records the documents handed to Write.
type mockOutput struct {
	mock.Mock
}

func (m *mockOutput) Write(ctx context.Context, doc tree.Node) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func staticInput(doc tree.Node) Input {
	return InputFunc(func(ctx context.Context) (tree.Node, error) {
		return doc, nil
	})
}

func staticKeys(keys ...string) KeySource {
	return KeySourceFunc(func(ctx context.Context, locale string) (tree.KeySet, error) {
		return tree.NewKeySet(keys...), nil
	})
}

// TestPlan_Unused reproduces pruning a file to the keys in use.
func TestPlan_Unused(t *testing.T) {
	spec := &Spec{
		Recipe: RecipeUnused,
		Locale: "en",
		Subject: staticInput(tree.Node{"en": tree.Node{
			"a": tree.Node{"b": "x", "c": "y"},
			"d": "z",
		}}),
		Compare: staticKeys("a.b", "e.f"),
	}

	plan, err := Plan(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, tree.FlatMap{"a.b": "x"}, plan.Result)
	assert.Equal(t, []string{"a.c", "d"}, plan.Dropped)
	assert.Equal(t, []string{"e.f"}, plan.Missing)
	assert.Equal(t, PlanSummary{SubjectKeys: 3, CompareKeys: 2, Kept: 1, Dropped: 2, Missing: 1}, plan.Summary)

	doc, err := Document(plan)
	require.NoError(t, err)
	assert.Equal(t, tree.Node{"en": tree.Node{"a": tree.Node{"b": "x"}}}, doc)
}

func TestPlan_SubtractBase(t *testing.T) {
	spec := &Spec{
		Recipe:  RecipeSubtractBase,
		Locale:  "en",
		Subject: staticInput(tree.Node{"en": tree.Node{"hello": "Hi", "bye": "Bye"}}),
		Compare: DocumentKeys(staticInput(tree.Node{"en": tree.Node{"hello": "Hello"}})),
	}

	plan, err := Plan(context.Background(), spec)
	require.NoError(t, err)

	doc, err := Document(plan)
	require.NoError(t, err)
	assert.Equal(t, tree.Node{"en": tree.Node{"bye": "Bye"}}, doc)
}

func TestPlan_ExportIgnoresCompare(t *testing.T) {
	spec := &Spec{
		Recipe:  RecipeExport,
		Locale:  "en",
		Subject: staticInput(tree.Node{"en": tree.Node{"a": "1"}}),
	}

	plan, err := Plan(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, tree.FlatMap{"a": "1"}, plan.Result)
	assert.Empty(t, plan.Dropped)
	assert.Empty(t, plan.Missing)
}

func TestPlan_EmptyResult(t *testing.T) {
	spec := &Spec{
		Recipe:  RecipeMaintain,
		Locale:  "fr",
		Subject: staticInput(tree.Node{"fr": tree.Node{"a": "1"}}),
		Compare: staticKeys(),
	}

	plan, err := Plan(context.Background(), spec)
	require.NoError(t, err)
	assert.Empty(t, plan.Result)

	doc, err := Document(plan)
	require.NoError(t, err)
	assert.Equal(t, tree.Node{"fr": tree.Node{}}, doc)
}

func TestPlan_MissingSource(t *testing.T) {
	failing := InputFunc(func(ctx context.Context) (tree.Node, error) {
		return nil, errors.New("disk on fire")
	})

	tests := []struct {
		name string
		spec *Spec
	}{
		{
			name: "subject",
			spec: &Spec{Recipe: RecipeMaintain, Locale: "en", Subject: failing, Compare: staticKeys("a")},
		},
		{
			name: "comparison",
			spec: &Spec{
				Recipe:  RecipeSubtractBase,
				Locale:  "en",
				Subject: staticInput(tree.Node{"en": tree.Node{"a": "1"}}),
				Compare: DocumentKeys(failing),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(context.Background(), tt.spec)
			require.ErrorIs(t, err, ErrMissingSource)
			assert.Contains(t, err.Error(), "disk on fire")
		})
	}
}

func TestPlan_StructuralErrorsAreNotMissingSource(t *testing.T) {
	spec := &Spec{
		Recipe:  RecipeUnused,
		Locale:  "en",
		Subject: staticInput(tree.Node{"en": "not a tree"}),
		Compare: staticKeys("a"),
	}

	_, err := Plan(context.Background(), spec)
	require.ErrorIs(t, err, tree.ErrStructuralConflict)
	assert.False(t, errors.Is(err, ErrMissingSource))

	spec.Subject = staticInput(tree.Node{"en": tree.Node{"a": "1"}})
	spec.Compare = staticKeys("a.b")
	_, err = Plan(context.Background(), spec)
	assert.ErrorIs(t, err, tree.ErrStructuralConflict)
}

func TestPlan_InvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		spec *Spec
		want error
	}{
		{"unknown recipe", &Spec{Recipe: "nope", Locale: "en", Subject: staticInput(nil)}, ErrUnknownRecipe},
		{"empty locale", &Spec{Recipe: RecipeExport, Locale: "", Subject: staticInput(nil)}, ErrInvalidSpec},
		{"dotted locale", &Spec{Recipe: RecipeExport, Locale: "en.US", Subject: staticInput(nil)}, ErrInvalidSpec},
		{"no subject", &Spec{Recipe: RecipeExport, Locale: "en"}, ErrInvalidSpec},
		{"no compare", &Spec{Recipe: RecipeMaintain, Locale: "en", Subject: staticInput(nil)}, ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(context.Background(), tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestApply_Gating verifies that nothing is written unless confirmed and not a dry run.
func TestApply_Gating(t *testing.T) {
	tests := []struct {
		name      string
		opts      ReconcileOptions
		wantWrite bool
	}{
		{"not confirmed", ReconcileOptions{Confirmed: false}, false},
		{"dry run", ReconcileOptions{Confirmed: true, DryRun: true}, false},
		{"confirmed", ReconcileOptions{Confirmed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(mockOutput)
			want := tree.Node{"en": tree.Node{"a": tree.Node{"b": "x"}}}
			if tt.wantWrite {
				out.On("Write", mock.Anything, want).Return(nil).Once()
			}

			spec := &Spec{
				Recipe:  RecipeMaintain,
				Locale:  "en",
				Subject: staticInput(tree.Node{"en": tree.Node{"a": tree.Node{"b": "x"}, "c": "y"}}),
				Compare: staticKeys("a.b"),
				Output:  out,
			}

			plan, written, err := ReconcileAndApply(context.Background(), spec, tt.opts)
			require.NoError(t, err)
			require.NotNil(t, plan)
			assert.Equal(t, tt.wantWrite, written)

			out.AssertExpectations(t)
			if !tt.wantWrite {
				out.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestApply_WriteError(t *testing.T) {
	out := new(mockOutput)
	out.On("Write", mock.Anything, mock.Anything).Return(errors.New("read-only"))

	spec := &Spec{
		Recipe:  RecipeExport,
		Locale:  "en",
		Subject: staticInput(tree.Node{"en": tree.Node{"a": "1"}}),
		Output:  out,
	}

	_, written, err := ReconcileAndApply(context.Background(), spec, ReconcileOptions{Confirmed: true})
	require.Error(t, err)
	assert.False(t, written)
	assert.Contains(t, err.Error(), "read-only")
}

func TestApply_NoOutput(t *testing.T) {
	spec := &Spec{
		Recipe:  RecipeExport,
		Locale:  "en",
		Subject: staticInput(tree.Node{"en": tree.Node{}}),
	}

	_, _, err := ReconcileAndApply(context.Background(), spec, ReconcileOptions{Confirmed: true})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}
