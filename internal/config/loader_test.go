package config

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestLoadOrCreate_CreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]any{
		"number_of_windows": float64(2),
		"url":               DefaultCourseURL,
	}, onDisk)
}

func TestLoadOrCreate_WritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	_, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"number_of_windows\": 2,\n    \"url\": \""+DefaultCourseURL+"\"\n}\n", string(data))
}

func TestLoadOrCreate_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)

	cfg, err := LoadOrCreate(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to create default config")
}

func TestLoadOrCreate_ExistingFile(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantCount     int
		wantEffective int
		wantURL       string
	}{
		{
			name:          "above range is clamped",
			content:       `{"number_of_windows": 7, "url": "https://example.com"}`,
			wantCount:     7,
			wantEffective: 4,
			wantURL:       "https://example.com",
		},
		{
			name:          "below range is clamped",
			content:       `{"number_of_windows": -3, "url": "https://example.com"}`,
			wantCount:     -3,
			wantEffective: 1,
			wantURL:       "https://example.com",
		},
		{
			name:          "in range",
			content:       `{"number_of_windows": 3, "url": "https://example.org"}`,
			wantCount:     3,
			wantEffective: 3,
			wantURL:       "https://example.org",
		},
		{
			name:          "empty object takes fallback values",
			content:       `{}`,
			wantCount:     DefaultNumberOfWindows,
			wantEffective: DefaultNumberOfWindows,
			wantURL:       FallbackURL,
		},
		{
			name:          "missing url",
			content:       `{"number_of_windows": 1}`,
			wantCount:     1,
			wantEffective: 1,
			wantURL:       FallbackURL,
		},
		{
			name:          "missing count",
			content:       `{"url": "https://example.com"}`,
			wantCount:     DefaultNumberOfWindows,
			wantEffective: DefaultNumberOfWindows,
			wantURL:       "https://example.com",
		},
		{
			name:          "null values take defaults",
			content:       `{"number_of_windows": null, "url": null}`,
			wantCount:     DefaultNumberOfWindows,
			wantEffective: DefaultNumberOfWindows,
			wantURL:       FallbackURL,
		},
		{
			name:          "numeric string count",
			content:       `{"number_of_windows": "3", "url": "https://example.com"}`,
			wantCount:     3,
			wantEffective: 3,
			wantURL:       "https://example.com",
		},
		{
			name:          "non numeric count",
			content:       `{"number_of_windows": "many", "url": "https://example.com"}`,
			wantCount:     DefaultNumberOfWindows,
			wantEffective: DefaultNumberOfWindows,
			wantURL:       "https://example.com",
		},
		{
			name:          "unknown keys ignored",
			content:       `{"number_of_windows": 4, "url": "https://example.com", "theme": "dark"}`,
			wantCount:     4,
			wantEffective: 4,
			wantURL:       "https://example.com",
		},
		{
			name:          "count beyond int range saturates high",
			content:       `{"number_of_windows": 100000000000000000000, "url": "https://example.com"}`,
			wantCount:     math.MaxInt,
			wantEffective: 4,
			wantURL:       "https://example.com",
		},
		{
			name:          "exponent count beyond int range saturates high",
			content:       `{"number_of_windows": 1e20, "url": "https://example.com"}`,
			wantCount:     math.MaxInt,
			wantEffective: 4,
			wantURL:       "https://example.com",
		},
		{
			name:          "count beyond int range saturates low",
			content:       `{"number_of_windows": -1e20, "url": "https://example.com"}`,
			wantCount:     math.MinInt,
			wantEffective: 1,
			wantURL:       "https://example.com",
		},
		{
			name:          "count beyond float range saturates high",
			content:       `{"number_of_windows": 1e400, "url": "https://example.com"}`,
			wantCount:     math.MaxInt,
			wantEffective: 4,
			wantURL:       "https://example.com",
		},
		{
			name:          "float count",
			content:       `{"number_of_windows": 3.0, "url": "https://example.com"}`,
			wantCount:     3,
			wantEffective: 3,
			wantURL:       "https://example.com",
		},
		{
			name:          "key names are case sensitive",
			content:       `{"Number_Of_Windows": 4, "URL": "https://upper.example"}`,
			wantCount:     DefaultNumberOfWindows,
			wantEffective: DefaultNumberOfWindows,
			wantURL:       FallbackURL,
		},
		{
			name:          "exact keys win over differently cased ones",
			content:       `{"URL": "https://upper.example", "url": "https://lower.example", "NUMBER_OF_WINDOWS": 1, "number_of_windows": 3}`,
			wantCount:     3,
			wantEffective: 3,
			wantURL:       "https://lower.example",
		},
		{
			name:          "object url falls back",
			content:       `{"number_of_windows": 2, "url": {"href": "https://example.com"}}`,
			wantCount:     2,
			wantEffective: 2,
			wantURL:       FallbackURL,
		},
		{
			name:          "url is not validated",
			content:       `{"number_of_windows": 2, "url": "not a url"}`,
			wantCount:     2,
			wantEffective: 2,
			wantURL:       "not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			cfg, err := LoadOrCreate(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, cfg.NumberOfWindows)
			assert.Equal(t, tt.wantEffective, cfg.EffectivePaneCount())
			assert.Equal(t, tt.wantURL, cfg.URL)
		})
	}
}

func TestLoadOrCreate_MalformedFile(t *testing.T) {
	for name, content := range map[string]string{
		"truncated":       `{"number_of_windows": 3,`,
		"not json":        `number_of_windows = 3`,
		"empty":           ``,
		"top level array": `[1, 2, 3]`,
		"top level null":  `null`,
		"trailing data":   `{"number_of_windows": 3} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, content)
			before, err := os.Stat(path)
			require.NoError(t, err)

			cfg, err := LoadOrCreate(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, Fallback(), cfg)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(data), "malformed file must not be modified")

			after, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, before.ModTime(), after.ModTime())
		})
	}
}

func TestLoadOrCreate_Idempotent(t *testing.T) {
	path := writeFile(t, `{"number_of_windows": 3, "url": "https://example.com"}`)
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	first, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)
	second, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "existing config must not be rewritten")
}

func TestLoadOrCreate_CreatedFileIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	created, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)
	reloaded, err := LoadOrCreate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, created, reloaded)
}

func TestWrite_NilConfig(t *testing.T) {
	err := Write(nil, filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}
