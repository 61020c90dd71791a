package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// executable is swapped in tests.
var executable = os.Executable

// BaseDir returns the directory holding the running binary, with symlinks
// resolved, so the config file is found regardless of the working directory.
//
// Binaries produced by `go run` live in a throwaway go-build directory; for
// those the working directory is used instead.
func BaseDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if isGoRunBuild(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	return dir, nil
}

// FilePath returns the absolute path of config.json next to the executable.
func FilePath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func isGoRunBuild(dir string) bool {
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if strings.HasPrefix(part, "go-build") {
			return true
		}
	}
	return false
}
