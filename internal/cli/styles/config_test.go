package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panewall/internal/build"
	"github.com/bnema/panewall/internal/cli/styles"
	"github.com/bnema/panewall/internal/config"
)

func TestConfigRenderer_RenderConfig(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfig("/opt/panewall/config.json", &config.Config{NumberOfWindows: 3, URL: "https://example.com"})
	require.Contains(t, out, "config.json")
	require.Contains(t, out, "3")
	require.Contains(t, out, "https://example.com")
	assert.NotContains(t, out, "clamped")
}

func TestConfigRenderer_RenderConfig_ShowsClamp(t *testing.T) {
	r := styles.NewConfigRenderer(nil)

	out := r.RenderConfig("/opt/panewall/config.json", &config.Config{NumberOfWindows: 7, URL: "https://example.com"})
	require.Contains(t, out, "stored 7")
	require.Contains(t, out, "clamped to 1..4")
}

func TestConfigRenderer_RenderConfig_Nil(t *testing.T) {
	r := styles.NewConfigRenderer(nil)

	out := r.RenderConfig("/x/config.json", nil)
	require.Contains(t, out, "Config error")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(nil)

	out := r.RenderError(errors.New("permission denied"))
	require.Contains(t, out, "permission denied")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(nil)

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "deadbee", BuildDate: "2025-06-01", GoVersion: "go1.25.3"})
	for _, want := range []string{"v0.3.0", "deadbee", "2025-06-01", "go1.25.3", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
