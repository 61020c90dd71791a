package theme

import (
	"strings"
	"testing"

	"github.com/bnema/panewall/internal/ui/component"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS_SeparatorRule(t *testing.T) {
	css := GenerateCSS()

	assert.Contains(t, css, "separator."+component.SeparatorClass+" {")
	assert.Contains(t, css, "background-color: var(--separator);")
	assert.Contains(t, css, "inset")
	// min-width plus both borders adds up to the fixed separator width
	assert.Contains(t, css, "min-width: 16px;")
	assert.Contains(t, css, "border: 2px inset")
}

func TestGenerateCSS_PaneRowHasNoSpacing(t *testing.T) {
	css := GenerateCSS()

	assert.Contains(t, css, "."+component.PaneRowClass+" {")
	assert.Contains(t, css, "margin: 0;")
	assert.Contains(t, css, "padding: 0;")
}

func TestGenerateCSSWithPalette_UsesPaletteColors(t *testing.T) {
	p := Palette{Background: "#111111", Separator: "#222222", Border: "#333333"}
	css := GenerateCSSWithPalette(p)

	assert.Contains(t, css, "--bg: #111111;")
	assert.Contains(t, css, "--separator: #222222;")
	assert.Contains(t, css, "--separator-border: #333333;")
	assert.True(t, strings.HasPrefix(css, "/* Theme variables */"))
}

func TestDefaultPalette_BlackSeparator(t *testing.T) {
	assert.Equal(t, "black", DefaultPalette().Separator)
}
