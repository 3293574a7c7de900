package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browsd/internal/config"
	"browsd/internal/errors"
)

// buildProject creates a small directory tree with one subdirectory and one
// file, mirroring the shape most listing tests need.
func buildProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644))
	return dir
}

func TestListDirectoriesBeforeFiles(t *testing.T) {
	dir := buildProject(t)

	listing, err := (&Lister{}).List(dir)
	require.NoError(t, err)
	require.NotNil(t, listing)

	assert.Equal(t, dir, listing.Dir)
	require.Len(t, listing.Entries, 2)
	assert.Equal(t, "src", listing.Entries[0].Name)
	assert.True(t, listing.Entries[0].IsDir)
	assert.Equal(t, "readme.txt", listing.Entries[1].Name)
	assert.False(t, listing.Entries[1].IsDir)
}

func TestListSortsWithinGroups(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vendor", "cmd", "internal"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}
	for _, name := range []string{"main.go", "README.md", "go.sum"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	listing, err := (&Lister{}).List(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(listing.Entries))
	for _, e := range listing.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"cmd", "internal", "vendor", "README.md", "go.sum", "main.go"}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	listing, err := (&Lister{}).List(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Empty(t, listing.Entries)
}

func TestListNonexistent(t *testing.T) {
	listing, err := (&Lister{}).List(filepath.Join(t.TempDir(), "missing"))
	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListFile(t *testing.T) {
	dir := buildProject(t)

	listing, err := (&Lister{}).List(filepath.Join(dir, "readme.txt"))
	assert.Nil(t, listing)
	require.Error(t, err)
	assert.True(t, errors.IsNotDirectory(err))
}

func TestListSkipsBrokenSymlinks(t *testing.T) {
	dir := buildProject(t)
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	listing, err := (&Lister{}).List(dir)
	require.NoError(t, err)

	for _, e := range listing.Entries {
		assert.NotEqual(t, "dangling", e.Name)
	}
	assert.Len(t, listing.Entries, 2)
}

func TestListClassifiesSymlinkTargets(t *testing.T) {
	dir := buildProject(t)
	require.NoError(t, os.Symlink(filepath.Join(dir, "src"), filepath.Join(dir, "srclink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "readme.txt"), filepath.Join(dir, "readlink")))

	listing, err := (&Lister{}).List(dir)
	require.NoError(t, err)

	byName := make(map[string]Entry)
	for _, e := range listing.Entries {
		byName[e.Name] = e
	}
	require.Contains(t, byName, "srclink")
	assert.True(t, byName["srclink"].IsDir)
	require.Contains(t, byName, "readlink")
	assert.False(t, byName["readlink"].IsDir)
}

func TestListSkipsHiddenWhenConfigured(t *testing.T) {
	dir := buildProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	cfg := config.NewTestConfig()
	cfg.Browse.ShowHidden = false
	listing, err := NewLister(cfg).List(dir)
	require.NoError(t, err)
	assert.Len(t, listing.Entries, 2)

	cfg.Browse.ShowHidden = true
	listing, err = NewLister(cfg).List(dir)
	require.NoError(t, err)
	assert.Len(t, listing.Entries, 4)
}

func TestListIgnorePatterns(t *testing.T) {
	dir := buildProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trace.log"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0755))

	cfg := config.NewTestConfig()
	cfg.Browse.Ignore = []string{"*.log", "node_modules"}

	listing, err := NewLister(cfg).List(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(listing.Entries))
	for _, e := range listing.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"src", "readme.txt"}, names)
}

func TestIsDirAndIsFile(t *testing.T) {
	dir := buildProject(t)

	assert.True(t, IsDir(dir))
	assert.True(t, IsDir(filepath.Join(dir, "src")))
	assert.False(t, IsDir(filepath.Join(dir, "readme.txt")))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))

	assert.True(t, IsFile(filepath.Join(dir, "readme.txt")))
	assert.False(t, IsFile(filepath.Join(dir, "src")))
	assert.False(t, IsFile(filepath.Join(dir, "missing")))
}
