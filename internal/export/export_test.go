package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, "", "# Hello\n")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "README.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# Hello\n", string(data))
}

func TestWriteFileCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := WriteFile(dir, "PROFILE.md", "body\n")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "PROFILE.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "body\n", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(dir, "README.md", "old\n")
	require.NoError(t, err)
	path, err := WriteFile(dir, "README.md", "new\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new\n", string(data))
}
