package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panewall/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	if theme == nil {
		theme = NewTheme()
	}
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderConfig renders the effective configuration loaded from path.
// Stored pane counts outside 1..4 are shown with the count actually used.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	if cfg == nil {
		return r.RenderError(fmt.Errorf("no configuration loaded"))
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	panes := valStyle.Render(fmt.Sprintf("%d", cfg.EffectivePaneCount()))
	if cfg.EffectivePaneCount() != cfg.NumberOfWindows {
		panes += " " + r.theme.WarningStyle.Render(
			fmt.Sprintf("(stored %d, clamped to %d..%d)", cfg.NumberOfWindows, config.MinPanes, config.MaxPanes),
		)
	}

	var sb strings.Builder
	sb.WriteString(r.RenderPath(path))
	sb.WriteString(fmt.Sprintf("    %s %s %s\n", iconStyle.Render(IconColumns), keyStyle.Render("Panes"), panes))
	sb.WriteString(fmt.Sprintf("    %s %s %s\n", iconStyle.Render(IconGlobe), keyStyle.Render("URL  "), valStyle.Render(cfg.URL)))
	return sb.String()
}

// RenderCreated renders the notice shown when a default config was written.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Created default config %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
