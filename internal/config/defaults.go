package config

// Default configuration constants
const (
	// DefaultNumberOfWindows is used when the file is created and when the key is missing.
	DefaultNumberOfWindows = 2

	// DefaultCourseURL is written to a freshly created config file.
	DefaultCourseURL = "https://k12.instructure.com/courses/2159019"

	// FallbackURL is used when the key is missing or the file cannot be parsed.
	// It differs from DefaultCourseURL on purpose; see DESIGN.md.
	FallbackURL = "https://qt.io"

	// Pane count bounds.
	MinPanes = 1
	MaxPanes = 4
)

// Default returns the configuration written when no config file exists yet.
func Default() *Config {
	return &Config{
		NumberOfWindows: DefaultNumberOfWindows,
		URL:             DefaultCourseURL,
	}
}

// Fallback returns the configuration used when the config file is unusable.
func Fallback() *Config {
	return &Config{
		NumberOfWindows: DefaultNumberOfWindows,
		URL:             FallbackURL,
	}
}
