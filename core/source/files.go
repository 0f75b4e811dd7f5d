package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"locale-manager/core/localefile"
	"locale-manager/core/tree"

	"github.com/spf13/afero"
)

// Files reads "<locale>.<ext>" files found anywhere below Dirs.
type Files struct {
	Fs   afero.Fs
	Dirs []string
}

// NewFiles creates a files source over dirs.
func NewFiles(fsys afero.Fs, dirs ...string) *Files {
	return &Files{Fs: fsys, Dirs: dirs}
}

// Tree merges the locale subtree of every matching file. Files are merged in sorted path
// order, so a later path overrides the leaves of an earlier one. Directories that do not
// exist are skipped.
func (f *Files) Tree(ctx context.Context, locale string) (tree.Node, error) {
	paths, err := f.paths(ctx, locale)
	if err != nil {
		return nil, err
	}

	merged := tree.Node{}
	for _, p := range paths {
		codec, err := localefile.CodecFor(p)
		if err != nil {
			return nil, err
		}
		data, err := afero.ReadFile(f.Fs, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		doc, err := codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		sub, err := tree.Subtree(doc, locale)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		merged = tree.Merge(merged, sub)
	}
	return tree.Root(locale, merged), nil
}

func (f *Files) paths(ctx context.Context, locale string) ([]string, error) {
	var paths []string
	for _, dir := range f.Dirs {
		exists, err := afero.DirExists(f.Fs, dir)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		err = afero.Walk(f.Fs, dir, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if info.IsDir() {
				return nil
			}
			base := filepath.Base(p)
			if strings.TrimSuffix(base, filepath.Ext(base)) != locale {
				return nil
			}
			if _, err := localefile.CodecFor(base); err == nil {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)
	return paths, nil
}
