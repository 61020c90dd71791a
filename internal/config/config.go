// Package config loads the panewall configuration file that sits next to the executable.
package config

// File permission constants
const (
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// FileName is the configuration file name, looked up in the executable's directory.
const FileName = "config.json"

// Configuration keys as they appear in config.json.
const (
	keyNumberOfWindows = "number_of_windows"
	keyURL             = "url"
)

// Config represents the complete configuration for panewall.
type Config struct {
	// NumberOfWindows is the requested pane count. Values outside [MinPanes, MaxPanes]
	// are kept as written and clamped when the pane row is built.
	NumberOfWindows int `mapstructure:"number_of_windows" json:"number_of_windows" jsonschema:"title=Number of panes,description=Browser panes shown side by side. Clamped to 1-4.,minimum=1,maximum=4,default=2"`

	// URL is loaded by every pane. It is handed to WebKit as-is.
	URL string `mapstructure:"url" json:"url" jsonschema:"title=URL,description=Page loaded in every pane.,format=uri"`
}

// EffectivePaneCount returns the pane count after clamping to [MinPanes, MaxPanes].
func (c *Config) EffectivePaneCount() int {
	if c == nil {
		return DefaultNumberOfWindows
	}
	return ClampPaneCount(c.NumberOfWindows)
}
