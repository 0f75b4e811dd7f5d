package source

import (
	"context"
	"testing"

	"locale-manager/core/tree"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_Tree(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"config/locales/en.yml":        "en:\n  hello: Hi\n  menu:\n    file: File\n",
		"config/locales/models/en.yml": "en:\n  menu:\n    edit: Edit\n  hello: Hello\n",
		"config/locales/fr.yml":        "fr:\n  hello: Salut\n",
		"config/locales/en.txt":        "not a locale file",
		"plugins/en.json":              `{"en":{"plugin":{"name":"Plugin"}}}`,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	src := NewFiles(fs, "config/locales", "plugins", "missing")
	doc, err := src.Tree(context.Background(), "en")
	require.NoError(t, err)

	assert.Equal(t, tree.Node{"en": tree.Node{
		"hello":  "Hello",
		"menu":   tree.Node{"file": "File", "edit": "Edit"},
		"plugin": tree.Node{"name": "Plugin"},
	}}, doc)
}

func TestFiles_NoFiles(t *testing.T) {
	doc, err := NewFiles(afero.NewMemMapFs(), "config/locales").Tree(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, tree.Node{"de": tree.Node{}}, doc)
}

func TestFiles_InvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "locales/en.yml", []byte("en: [broken\n"), 0o644))

	_, err := NewFiles(fs, "locales").Tree(context.Background(), "en")
	assert.ErrorContains(t, err, "locales/en.yml")
}
