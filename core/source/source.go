package source

import (
	"context"
	"fmt"
	"time"

	"locale-manager/core/reconcile"
	"locale-manager/core/tree"

	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Source returns the current translation tree of a locale, rooted at the locale.
type Source interface {
	Tree(ctx context.Context, locale string) (tree.Node, error)
}

// Deps carries the collaborators a source may need.
type Deps struct {
	Fs afero.Fs
	DB *gorm.DB
}

// New builds the source selected by cfg.Kind, wrapped in a cache when
// cfg.CacheTTLSeconds is positive.
func New(ctx context.Context, cfg Config, deps Deps) (Source, error) {
	var (
		src Source
		err error
	)

	switch cfg.Kind {
	case KindFiles, "":
		src = NewFiles(deps.Fs, cfg.Dirs...)
	case KindDatabase:
		src, err = newDatabase(ctx, cfg, deps.DB)
	case KindBundle:
		src = NewBundle(afero.NewIOFS(afero.NewBasePathFs(deps.Fs, cfg.BundleDir)))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTLSeconds > 0 {
		src = NewCached(src, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}
	return src, nil
}

func newDatabase(ctx context.Context, cfg Config, db *gorm.DB) (*Database, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	src := NewDatabase(db)
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		return src, nil
	}
	if err := src.Verify(ctx); err != nil {
		return nil, err
	}
	return src, nil
}

// Input adapts the tree of one locale to reconcile.Input.
func Input(src Source, locale string) reconcile.Input {
	return reconcile.InputFunc(func(ctx context.Context) (tree.Node, error) {
		return src.Tree(ctx, locale)
	})
}

// Keys adapts a source to reconcile.KeySource: the comparison set is the flattened key
// space of the locale tree.
func Keys(src Source) reconcile.KeySource {
	return reconcile.KeySourceFunc(func(ctx context.Context, locale string) (tree.KeySet, error) {
		doc, err := src.Tree(ctx, locale)
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
