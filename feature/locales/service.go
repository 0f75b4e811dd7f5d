package locales

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"locale-manager/core/localefile"
	"locale-manager/core/reconcile"
	"locale-manager/core/source"
	"locale-manager/core/tree"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Request selects a recipe and the files it reads and writes. Empty file names fall back
// to the configured defaults: "<locale>.<ext>" for the target and the base file.
type Request struct {
	Recipe reconcile.Recipe `json:"recipe"`
	Target string           `json:"target"`
	Base   string           `json:"base"`
	// Source and Model are required by prune-deleted.
	Source string `json:"source"`
	Model  string `json:"model"`
	// ModelLocale is the root of the model file. Defaults to the request locale.
	ModelLocale string `json:"model_locale"`
	// RequireBase makes a missing base file an error instead of an empty key set.
	RequireBase bool `json:"require_base"`
	DryRun      bool `json:"dry_run"`
	// AllowOutsideDir accepts absolute names and names leaving the locales dir. It is never
	// decoded from a request body.
	AllowOutsideDir bool `json:"-"`
}

// Service runs reconciliations against the configured collaborators.
type Service struct {
	store   localefile.Store
	files   localefile.Config
	current source.Source
	usage   reconcile.KeySource
	logger  *zap.Logger
}

// invalidator is implemented by caching sources.
type invalidator interface {
	Invalidate(locales ...string)
}

// NewService creates a new locales service. usage may be nil when key discovery is not
// available; the unused recipe then fails with reconcile.ErrInvalidSpec.
func NewService(store localefile.Store, files localefile.Config, current source.Source, usage reconcile.KeySource, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		files:   files,
		current: current,
		usage:   usage,
		logger:  logger,
	}
}

// ValidateLocale checks that locale is usable as a tree root and a language tag.
func ValidateLocale(locale string) error {
	if _, err := tree.NewKey(locale); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("%w: %q: %s", ErrInvalidLocale, locale, err)
	}
	return nil
}

// Keys returns the flattened current tree of locale, optionally limited to the keys
// below prefix.
func (s *Service) Keys(ctx context.Context, locale, prefix string) (tree.FlatMap, error) {
	if err := ValidateLocale(locale); err != nil {
		return nil, err
	}

	doc, err := s.current.Tree(ctx, locale)
	if err != nil {
		return nil, err
	}
	flat, err := tree.FlattenLocale(doc, locale)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return flat, nil
	}

	out := make(tree.FlatMap)
	for k, v := range flat {
		if k == prefix || strings.HasPrefix(k, prefix+tree.Delimiter) {
			out[k] = v
		}
	}
	return out, nil
}

// Spec translates a request into a reconcile.Spec.
func (s *Service) Spec(locale string, req Request) (*reconcile.Spec, error) {
	if err := ValidateLocale(locale); err != nil {
		return nil, err
	}
	recipe, err := reconcile.ParseRecipe(string(req.Recipe))
	if err != nil {
		return nil, err
	}

	target, err := s.file(req, req.Target, locale, false)
	if err != nil {
		return nil, err
	}
	spec := &reconcile.Spec{
		Recipe: recipe,
		Locale: locale,
		Output: target,
	}

	// The target is written even when it does not exist yet, but recipes reading it need
	// it to be there.
	existing := *target
	existing.Required = true

	switch recipe {
	case reconcile.RecipeUnused:
		spec.Subject = &existing
		if s.usage != nil {
			spec.Compare = s.usage
		}

	case reconcile.RecipeSubtractBase:
		name := req.Base
		if name == "" {
			name = s.files.BaseFile
		}
		base, err := s.file(req, name, locale, req.RequireBase)
		if err != nil {
			return nil, err
		}
		spec.Subject = source.Input(s.current, locale)
		spec.Compare = reconcile.DocumentKeys(base)

	case reconcile.RecipeMaintain:
		spec.Subject = source.Input(s.current, locale)
		spec.Compare = reconcile.DocumentKeys(&existing)

	case reconcile.RecipePruneDeleted:
		if req.Source == "" || req.Model == "" {
			return nil, fmt.Errorf("%w: %s needs a source and a model file", ErrMissingArgument, recipe)
		}
		src, err := s.file(req, req.Source, locale, true)
		if err != nil {
			return nil, err
		}
		model, err := s.file(req, req.Model, locale, true)
		if err != nil {
			return nil, err
		}
		spec.Subject = src
		spec.Compare = rootedKeys(model, req.ModelLocale)
		spec.Output = src

	case reconcile.RecipeExport:
		spec.Subject = source.Input(s.current, locale)
	}

	return spec, nil
}

// Reconcile plans the request and writes the result unless req.DryRun is set or the
// caller did not confirm.
func (s *Service) Reconcile(ctx context.Context, locale string, req Request, confirmed bool) (*reconcile.ReconcilePlan, bool, error) {
	spec, err := s.Spec(locale, req)
	if err != nil {
		return nil, false, err
	}

	opts := reconcile.ReconcileOptions{DryRun: req.DryRun, Confirmed: confirmed}
	plan, written, err := reconcile.ReconcileAndApply(ctx, spec, opts)
	if err != nil {
		return nil, false, err
	}
	if c, ok := s.current.(invalidator); ok && written {
		c.Invalidate(locale)
	}

	s.logger.Info("Reconcile finished",
		zap.String("recipe", string(plan.Recipe)),
		zap.String("locale", plan.Locale),
		zap.Int("kept", plan.Summary.Kept),
		zap.Int("dropped", plan.Summary.Dropped),
		zap.Int("missing", plan.Summary.Missing),
		zap.Bool("written", written),
	)
	return plan, written, nil
}

// file resolves a file name of req. Unless req.AllowOutsideDir is set, names must stay
// inside the locales dir.
func (s *Service) file(req Request, name, locale string, required bool) (*localefile.File, error) {
	if name == "" {
		var err error
		if name, err = s.files.LocaleFile(locale); err != nil {
			return nil, err
		}
	}
	if !req.AllowOutsideDir && !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return localefile.NewFile(s.store, name, s.files.Format, required)
}

// rootedKeys flattens a document under root instead of the reconciled locale, so a model
// file of another language can drive pruning.
func rootedKeys(in reconcile.Input, root string) reconcile.KeySource {
	keys := reconcile.DocumentKeys(in)
	return reconcile.KeySourceFunc(func(ctx context.Context, locale string) (tree.KeySet, error) {
		if root != "" {
			locale = root
		}
		return keys.Keys(ctx, locale)
	})
}
