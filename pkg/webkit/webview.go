package webkit

import (
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// WebView wraps a WebKitGTK WebView
type WebView struct {
	widget
	view *webkit.WebView
}

// NewWebView creates a new WebView with hardware accelerated rendering.
func NewWebView() (*WebView, error) {
	InitMainThread()

	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	if settings := wkView.Settings(); settings != nil {
		settings.SetEnableJavascript(true)
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}

	return &WebView{
		widget: widget{inner: &wkView.Widget},
		view:   wkView,
	}, nil
}

// LoadURI loads the given URI in the WebView
func (w *WebView) LoadURI(uri string) {
	w.view.LoadURI(uri)
}

// URI returns the current URI
func (w *WebView) URI() string {
	return w.view.URI()
}

// SetTouchEventsEnabled controls whether touch sequences reach web content.
func (w *WebView) SetTouchEventsEnabled(enabled bool) {
	applyTouch(w.view, w.gestures(), enabled)
}

// TouchEventsEnabled reads the touch state back from GTK and WebKit.
func (w *WebView) TouchEventsEnabled() bool {
	return touchEnabled(w.view, w.gestures())
}

// gestures returns the view settings, or a nil interface when WebKit has none.
func (w *WebView) gestures() navigationGestures {
	if settings := w.view.Settings(); settings != nil {
		return settings
	}
	return nil
}

func (w *WebView) native() gtk.Widgetter { return w.view }
