// Package layout defines the widget abstractions panewall builds its UI from.
// The interfaces wrap the few GTK operations the pane row and window need,
// which keeps the layout logic testable without a GTK runtime.
package layout

// Orientation represents the orientation for layout widgets.
type Orientation int

// Orientation constants.
const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// Widget is the base interface that all widgets implement.
type Widget interface {
	// Layout
	SetHExpand(expand bool)
	SetVExpand(expand bool)
	SetSizeRequest(width, height int)

	// CSS styling
	AddCSSClass(cssClass string)
}

// BoxWidget arranges children in a single row or column.
type BoxWidget interface {
	Widget

	Append(child Widget)
	SetMargins(margin int)
}

// SeparatorWidget is a purely visual divider between two widgets.
type SeparatorWidget interface {
	Widget
}

// WebViewWidget is an embedded web rendering surface.
type WebViewWidget interface {
	Widget

	LoadURI(uri string)
	URI() string

	// SetTouchEventsEnabled delivers raw touch sequences to the page instead
	// of letting the toolkit turn them into pointer or navigation gestures.
	SetTouchEventsEnabled(enabled bool)
	TouchEventsEnabled() bool
}

// WindowWidget is a top-level application window.
type WindowWidget interface {
	SetTitle(title string)
	SetChild(child Widget)
	Maximize()
	Present()
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewSeparator(orientation Orientation) SeparatorWidget
	NewWebView() (WebViewWidget, error)
	NewWindow() (WindowWidget, error)
}
