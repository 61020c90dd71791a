package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/panewall/internal/ui/component"
)

// SeparatorBorderWidth is the width of the recessed separator border in pixels.
const SeparatorBorderWidth = 2

// GenerateCSS creates the GTK4 stylesheet for the pane row using the default palette.
func GenerateCSS() string {
	return GenerateCSSWithPalette(DefaultPalette())
}

// GenerateCSSWithPalette creates the GTK4 stylesheet for the pane row.
func GenerateCSSWithPalette(p Palette) string {
	var sb strings.Builder

	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString("window {\n  background-color: var(--bg);\n}\n\n")

	sb.WriteString(generatePaneRowCSS())
	sb.WriteString("\n")
	sb.WriteString(generateSeparatorCSS())

	return sb.String()
}

func generatePaneRowCSS() string {
	return fmt.Sprintf(`/* ===== Pane Row ===== */
.%s {
	margin: 0;
	padding: 0;
	border-spacing: 0;
}
`, component.PaneRowClass)
}

// generateSeparatorCSS styles the divider between panes: solid black, sunken edge, fixed width.
func generateSeparatorCSS() string {
	return fmt.Sprintf(`/* ===== Pane Separator ===== */
separator.%[1]s {
	min-width: %[2]dpx;
	margin: 0;
	background-color: var(--separator);
	border: %[3]dpx inset var(--separator-border);
}
`, component.SeparatorClass, component.SeparatorWidth-2*SeparatorBorderWidth, SeparatorBorderWidth)
}
