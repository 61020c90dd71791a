package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExecutable(t *testing.T, path string, err error) {
	t.Helper()
	orig := executable
	executable = func() (string, error) { return path, err }
	t.Cleanup(func() { executable = orig })
}

func TestBaseDir_ExecutableDirectory(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "panewall")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))
	stubExecutable(t, exe, nil)

	got, err := BaseDir()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBaseDir_ResolvesSymlink(t *testing.T) {
	realDir := t.TempDir()
	linkDir := t.TempDir()
	exe := filepath.Join(realDir, "panewall")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))
	link := filepath.Join(linkDir, "panewall")
	require.NoError(t, os.Symlink(exe, link))
	stubExecutable(t, link, nil)

	got, err := BaseDir()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(realDir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBaseDir_GoRunUsesWorkingDirectory(t *testing.T) {
	stubExecutable(t, filepath.Join(os.TempDir(), "go-build123456", "b001", "exe", "panewall"), nil)

	got, err := BaseDir()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestBaseDir_ExecutableError(t *testing.T) {
	stubExecutable(t, "", errors.New("boom"))

	_, err := BaseDir()
	require.Error(t, err)
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "panewall")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))
	stubExecutable(t, exe, nil)

	got, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, FileName, filepath.Base(got))
}

func TestIsGoRunBuild(t *testing.T) {
	assert.True(t, isGoRunBuild("/tmp/go-build42/b001/exe"))
	assert.False(t, isGoRunBuild("/opt/panewall"))
	assert.False(t, isGoRunBuild("/home/user/my-go-builds"))
}
