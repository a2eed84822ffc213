package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
)

func mkfile(t *testing.T, root, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
}

func TestWalkReturnsLexicographicEntries(t *testing.T) {
	root := t.TempDir()
	mkfile(t, root, "b.go")
	mkfile(t, root, "a.go")
	mkfile(t, root, "sub/c.go")

	entries, _, err := walk(root, config.DefaultDirectoryConfig())
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.relPath)
	}
	assert.Contains(t, paths, "a.go")
	assert.Contains(t, paths, "b.go")
	assert.Contains(t, paths, "sub/c.go")
	assert.Equal(t, []string{"a.go", "b.go", "sub/c.go"}, paths)
}

func TestWalkMissingRootErrors(t *testing.T) {
	_, _, err := walk(filepath.Join(t.TempDir(), "missing"), config.DefaultDirectoryConfig())
	assert.Error(t, err)
}

func TestWalkRespectsMaxFiles(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 5; i++ {
		mkfile(t, root, string(rune('a'+i))+".go")
	}
	cfg := config.DefaultDirectoryConfig()
	cfg.MaxFiles = 2

	entries, _, err := walk(root, cfg)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(entries), 2)
}

func TestWalkSkipsSymlinksByDefault(t *testing.T) {
	root := t.TempDir()
	mkfile(t, root, "real.go")
	target := filepath.Join(root, "real.go")
	link := filepath.Join(root, "link.go")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	entries, _, err := walk(root, config.DefaultDirectoryConfig())
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.relPath)
	}
	assert.Contains(t, paths, "real.go")
	assert.NotContains(t, paths, "link.go")
}

func TestWalkIncludesDirectoryTreeWhenConfigured(t *testing.T) {
	root := t.TempDir()
	mkfile(t, root, "sub/file.go")

	cfg := config.DefaultDirectoryConfig()
	cfg.IncludeDirectoryStructure = true

	_, tree, err := walk(root, cfg)
	require.NoError(t, err)
	assert.Contains(t, tree, "sub/")
}
