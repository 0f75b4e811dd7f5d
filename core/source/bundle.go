package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"locale-manager/core/tree"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var bundleExtensions = map[string]struct{}{
	".toml": {},
	".yaml": {},
	".yml":  {},
	".json": {},
}

// Bundle reads go-i18n message files such as "active.en.toml" from an fs.FS.
type Bundle struct {
	FS fs.FS
}

// NewBundle creates a message file source.
func NewBundle(fsys fs.FS) *Bundle {
	return &Bundle{FS: fsys}
}

// Tree returns the messages of every file whose language tag equals locale. A plain
// message becomes one leaf under its ID; a plural message contributes one leaf per
// non-empty form, e.g. "items.one" and "items.other".
func (b *Bundle) Tree(ctx context.Context, locale string) (tree.Node, error) {
	want, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(want)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	files, err := b.files(ctx)
	if err != nil {
		return nil, err
	}

	flat := tree.FlatMap{}
	for _, name := range files {
		mf, err := bundle.LoadMessageFileFS(b.FS, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		if mf.Tag != want {
			continue
		}
		for _, m := range mf.Messages {
			addMessage(flat, m)
		}
	}

	node, err := tree.Unflatten(flat)
	if err != nil {
		return nil, err
	}
	return tree.Root(locale, node), nil
}

func (b *Bundle) files(ctx context.Context) ([]string, error) {
	var files []string
	err := fs.WalkDir(b.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := bundleExtensions[strings.ToLower(path.Ext(p))]; ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func addMessage(flat tree.FlatMap, m *i18n.Message) {
	forms := map[string]string{
		"zero": m.Zero,
		"one":  m.One,
		"two":  m.Two,
		"few":  m.Few,
		"many": m.Many,
	}

	plural := false
	for form, text := range forms {
		if text != "" {
			flat[m.ID+tree.Delimiter+form] = text
			plural = true
		}
	}
	if !plural {
		flat[m.ID] = m.Other
		return
	}
	if m.Other != "" {
		flat[m.ID+tree.Delimiter+"other"] = m.Other
	}
}
