package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("img/page1.svg", "<svg/>")

	content, err := mfs.ReadFile("/edition/img/page1.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))

	// Relative paths resolve against the root.
	content, err = mfs.ReadFile("img/page1.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))
}

func TestMemoryFileSystem_ReadFile_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")

	_, err := mfs.ReadFile("missing.svg")
	assert.ErrorContains(t, err, "file not found")
}

func TestMemoryFileSystem_ReadFile_Directory(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("img/page1.svg", "<svg/>")

	_, err := mfs.ReadFile("img")
	assert.ErrorContains(t, err, "directory")
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("doc.json", "old")

	require.NoError(t, mfs.WriteFile("doc.json", []byte("new")))

	content, ok := mfs.Content("doc.json")
	require.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestMemoryFileSystem_WriteFile_CreatesFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")

	require.NoError(t, mfs.WriteFile("sub/new.svg", []byte("<svg/>")))

	content, err := mfs.ReadFile("/edition/sub/new.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))

	info, err := mfs.Stat("sub")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFileSystem_WriteFile_RefusesDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("img/page1.svg", "<svg/>")

	err := mfs.WriteFile("img", []byte("x"))
	assert.ErrorContains(t, err, "directory")
}

func TestMemoryFileSystem_Open_NotADirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("doc.json", "{}")

	_, err := mfs.Open("doc.json")
	assert.ErrorContains(t, err, "not a directory")
}

func TestMemoryFileSystem_Open_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")

	_, err := mfs.Open("/nowhere")
	assert.ErrorContains(t, err, "directory not found")
}

func TestMemoryFileSystem_WalkDeterministicOrder(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("b.svg", "<svg/>")
	mfs.AddFile("a.svg", "<svg/>")
	mfs.AddFile("sub/c.svg", "<svg/>")

	dir, err := mfs.Open("/edition")
	require.NoError(t, err)

	var paths []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			paths = append(paths, file.Path())
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/edition/a.svg",
		"/edition/b.svg",
		"/edition/sub/c.svg",
	}, paths)
}

func TestMemoryFileSystem_WalkRelativePaths(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("sub/c.svg", "<svg/>")

	dir, err := mfs.Open("/edition")
	require.NoError(t, err)

	var rels []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			rels = append(rels, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/c.svg"}, rels)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/edition")
	mfs.AddFile("doc.json", "{}")

	info, err := mfs.Stat("doc.json")
	require.NoError(t, err)
	assert.Equal(t, "doc.json", info.Name())
	assert.Equal(t, int64(2), info.Size())
	assert.False(t, info.IsDir())

	_, err = mfs.Stat("missing")
	assert.Error(t, err)
}
