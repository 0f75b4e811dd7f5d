package usage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"locale-manager/core/tree"

	"github.com/spf13/afero"
)

// DefaultPattern matches Ruby and ERB lookups such as t("users.title"), I18n.t 'a.b' and
// t("items.count", :count => @n). Group 1 is the key, group 2 the optional count argument.
var DefaultPattern = regexp.MustCompile(
	`(?:I18n\.|I18n::|[ >(=\[{,+])t[( ]?["']([a-zA-Z0-9._]+)["'](,\s*(?::count\s*=>|count:)\s*[@a-zA-Z0-9._]+)?\)?`,
)

// Scanner greps a source tree for translation lookups.
type Scanner struct {
	// Fs is the file system walked by Scan.
	Fs afero.Fs
	// Root is the directory to walk.
	Root string
	// Extensions restricts the scanned files. Empty means every file.
	Extensions []string
	// Pattern must capture the key in group 1 and the count argument in group 2.
	Pattern *regexp.Regexp
}

// NewScanner creates a Scanner with the default lookup pattern.
func NewScanner(fs afero.Fs, cfg Config) *Scanner {
	return &Scanner{
		Fs:         fs,
		Root:       cfg.Root,
		Extensions: cfg.Extensions,
		Pattern:    DefaultPattern,
	}
}

// Scan returns every key looked up under Root, valued with Placeholder.
// A missing root yields an empty map.
func (s *Scanner) Scan(ctx context.Context) (tree.FlatMap, error) {
	used := make(tree.FlatMap)
	pattern := s.Pattern
	if pattern == nil {
		pattern = DefaultPattern
	}

	exists, err := afero.DirExists(s.Fs, s.Root)
	if err != nil {
		return nil, err
	}
	if !exists {
		return used, nil
	}

	err = afero.Walk(s.Fs, s.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() || !s.matches(path) {
			return nil
		}

		data, err := afero.ReadFile(s.Fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		collect(used, pattern, string(data))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return used, nil
}

// Keys implements reconcile.KeySource. The locale is not part of a lookup, so every
// locale shares the same key set.
func (s *Scanner) Keys(ctx context.Context, _ string) (tree.KeySet, error) {
	used, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return used.KeySet(), nil
}

func (s *Scanner) matches(path string) bool {
	if len(s.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range s.Extensions {
		e = strings.TrimSpace(e)
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// collect adds the keys found in content. Relative lookups (".title") and other keys that
// are not valid paths are skipped.
func collect(used tree.FlatMap, pattern *regexp.Regexp, content string) {
	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		if len(m) < 2 {
			continue
		}
		key := m[1]
		if _, err := tree.ParseKey(key); err != nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			ExpandPlural(used, key)
			continue
		}
		used[key] = Placeholder
	}
}
