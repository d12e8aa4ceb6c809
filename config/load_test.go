package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func Test_LoadHierarchy(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "team", "project")
	require.NoError(t, os.MkdirAll(nested, 0755))

	rootPath := writeConfig(t, root, "tools:\n  node: 20.11.0\n")
	nestedPath := writeConfig(t, nested, "tools:\n  node: 18.2.0\n  go: ~1.22\n")

	manager, err := LoadHierarchy(nested)
	require.NoError(t, err)

	// nearest first; anything above the temp root is environment-dependent,
	// so only the first two entries are asserted
	require.GreaterOrEqual(t, len(manager.Files), 2)

	want := []File{
		{
			Path: nestedPath,
			Config: Config{
				Tools: map[string]string{"node": "18.2.0", "go": "~1.22"},
			},
		},
		{
			Path: rootPath,
			Config: Config{
				Tools: map[string]string{"node": "20.11.0"},
			},
		},
	}

	if d := cmp.Diff(want, manager.Files[:2]); d != "" {
		t.Errorf("unexpected files (-want +got):\n%s", d)
	}
}

func Test_LoadHierarchy_skipsDirsWithoutConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	rootPath := writeConfig(t, root, "tools:\n  node: 20.11.0\n")

	manager, err := LoadHierarchy(nested)
	require.NoError(t, err)

	require.NotEmpty(t, manager.Files)
	assert.Equal(t, rootPath, manager.Files[0].Path)
}

func Test_LoadHierarchy_aggregatesMalformedFiles(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(nested, 0755))

	rootPath := writeConfig(t, root, "tools: [not: a: mapping\n")
	nestedPath := writeConfig(t, nested, "	tabs are not yaml\n")

	_, err := LoadHierarchy(nested)
	require.Error(t, err)
	assert.ErrorContains(t, err, nestedPath)
	assert.ErrorContains(t, err, rootPath)
}

func Test_LoadHierarchy_strategyFromNearestFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(nested, 0755))

	writeConfig(t, root, "settings:\n  detect-strategy: only-config\n")
	writeConfig(t, nested, "settings:\n  detect-strategy: prefer-config\n")

	manager, err := LoadHierarchy(nested)
	require.NoError(t, err)

	assert.Equal(t, PreferConfig, manager.Strategy())
}
