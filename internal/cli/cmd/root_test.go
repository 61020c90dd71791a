package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panewall/internal/build"
	"github.com/bnema/panewall/internal/config"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func useConfigPath(t *testing.T, path string) {
	t.Helper()
	orig := configPath
	configPath = func() (string, error) { return path, nil }
	t.Cleanup(func() { configPath = orig })
}

func useGUIRunner(t *testing.T, runner GUIRunner) {
	t.Helper()
	orig := guiRunner
	SetGUIRunner(runner)
	t.Cleanup(func() { guiRunner = orig })
}

func TestExecute_NoArgsRunsGUI(t *testing.T) {
	calls := 0
	useGUIRunner(t, func(context.Context) int {
		calls++
		return 7
	})

	code, _, _ := run(t)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, code)
}

func TestExecute_NoRunnerFails(t *testing.T) {
	useGUIRunner(t, nil)

	code, _, stderr := run(t)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no GUI runner")
}

func TestExecute_UnknownArgumentFails(t *testing.T) {
	useGUIRunner(t, func(context.Context) int {
		t.Fatal("GUI must not start")
		return 0
	})

	code, _, stderr := run(t, "bogus")

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}

func TestVersion(t *testing.T) {
	orig := buildInfo
	SetBuildInfo(build.New("v1.4.0", "cafe123", "2025-03-04"))
	t.Cleanup(func() { buildInfo = orig })

	code, out, _ := run(t, "version", "--short")
	assert.Equal(t, 0, code)
	assert.Equal(t, "v1.4.0\n", out)

	code, out, _ = run(t, "about")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "cafe123")
	assert.Contains(t, out, "2025-03-04")
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	useConfigPath(t, path)

	code, out, _ := run(t, "config", "path")

	assert.Equal(t, 0, code)
	assert.Equal(t, path+"\n", out)
	assert.NoFileExists(t, path)
}

func TestConfigShow_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	useConfigPath(t, path)

	code, out, _ := run(t, "config", "show")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Created default config")
	assert.Contains(t, out, config.DefaultCourseURL)
	assert.FileExists(t, path)
}

func TestConfigShow_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"number_of_windows": 9, "url": "https://example.com"}`), 0o644))
	useConfigPath(t, path)

	code, out, _ := run(t, "config", "show")

	require.Equal(t, 0, code)
	assert.NotContains(t, out, "Created default config")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "stored 9")
}

func TestConfigShow_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", config.FileName)
	useConfigPath(t, path)

	code, out, _ := run(t, "config", "show")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Config error")
}

func TestConfigSchema(t *testing.T) {
	code, out, _ := run(t, "config", "schema")

	require.Equal(t, 0, code)
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "properties")
}
