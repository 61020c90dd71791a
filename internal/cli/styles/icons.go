// Package styles provides lipgloss-based rendering for CLI output.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" // browser/web
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconColumns   = "" // columns
	IconCheck     = "" // check
	IconX         = "" // x
	IconConfig    = "" // config
)
