package webkit

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/panewall/internal/ui/layout"
)

// Application wraps gtk.Application and owns the GTK main loop.
type Application struct {
	app *gtk.Application
}

// NewApplication creates a GTK application. Instances are not unique, so
// several walls can run side by side like separate processes of any other
// program.
func NewApplication(id string) *Application {
	InitMainThread()
	return &Application{
		app: gtk.NewApplication(id, gio.ApplicationNonUnique),
	}
}

// Run enters the main loop and blocks until the last window closes.
// onActivate receives a widget factory bound to this application.
// The returned value is the toolkit's exit status.
func (a *Application) Run(args []string, onActivate func(layout.WidgetFactory)) int {
	if a == nil || a.app == nil {
		return 1
	}
	a.app.ConnectActivate(func() {
		onActivate(NewFactory(a.app))
	})
	return a.app.Run(args)
}

// AddCSSProvider installs application-level CSS rules on the default display.
func AddCSSProvider(css string) error {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return ErrNoDisplay
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(css)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	return nil
}

// AddCSSProvider installs css on the default display. The application must
// already be registered with a display, which is the case inside onActivate.
func (a *Application) AddCSSProvider(css string) error {
	return AddCSSProvider(css)
}
