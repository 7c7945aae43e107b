package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "main", "java", "Uncheckers.java")

	require.NoError(t, WriteFile(path, []byte("class Uncheckers {}\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class Uncheckers {}\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFile_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Uncheckers.java")

	require.NoError(t, WriteFile(path, []byte("old")))
	require.NoError(t, WriteFile(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteFiles_StagingFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()

	// A regular file where a parent directory is needed.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), filePerm))

	good := filepath.Join(dir, "out", "Uncheckers.java")
	bad := filepath.Join(blocker, "IoUncheckers.java")

	err := WriteFiles([]string{good, bad}, []*GeneratedFile{
		{Filename: "Uncheckers.java", Content: []byte("a")},
		{Filename: "IoUncheckers.java", Content: []byte("b")},
	})
	require.Error(t, err)

	_, err = os.Stat(good)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(filepath.Dir(good))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFiles_LengthMismatch(t *testing.T) {
	err := WriteFiles([]string{"a", "b"}, []*GeneratedFile{{}})
	require.Error(t, err)
}
