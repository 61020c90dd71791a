package webkit

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/panewall/internal/ui/layout"
)

var _ layout.WidgetFactory = (*Factory)(nil)

// Factory creates GTK/WebKit widgets for the layout package.
// It must only be used on the GTK main thread after the application activated.
type Factory struct {
	app *gtk.Application
}

// NewFactory returns a factory whose windows belong to app.
func NewFactory(app *gtk.Application) *Factory {
	return &Factory{app: app}
}

func (f *Factory) NewBox(o layout.Orientation, spacing int) layout.BoxWidget {
	return NewBox(o, spacing)
}

func (f *Factory) NewSeparator(o layout.Orientation) layout.SeparatorWidget {
	return NewSeparator(o)
}

func (f *Factory) NewWebView() (layout.WebViewWidget, error) {
	view, err := NewWebView()
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (f *Factory) NewWindow() (layout.WindowWidget, error) {
	win, err := NewWindow(f.app)
	if err != nil {
		return nil, err
	}
	return win, nil
}
