// Package theme provides GTK CSS styling for the pane wall.
package theme

import "strings"

// Palette holds the colors used by the pane wall chrome.
type Palette struct {
	Background string // Window background behind the panes
	Separator  string // Separator fill
	Border     string // Separator recessed border
}

// DefaultPalette returns the kiosk palette: black separators on a black frame.
func DefaultPalette() Palette {
	return Palette{
		Background: "#000000",
		Separator:  "black",
		Border:     "#2a2a2a",
	}
}

// ToCSSVars renders the palette as GTK CSS custom properties.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	sb.WriteString("  --bg: " + p.Background + ";\n")
	sb.WriteString("  --separator: " + p.Separator + ";\n")
	sb.WriteString("  --separator-border: " + p.Border + ";\n")
	return sb.String()
}
