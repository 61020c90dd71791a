package webkit

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/panewall/internal/ui/layout"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
)

// Window wraps gtk.ApplicationWindow
type Window struct {
	win *gtk.ApplicationWindow
}

// NewWindow creates a window owned by app.
func NewWindow(app *gtk.Application) (*Window, error) {
	if app == nil {
		return nil, ErrNoApplication
	}
	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowNotInitialized
	}
	// Size used when the user unmaximizes.
	win.SetDefaultSize(defaultWidth, defaultHeight)
	return &Window{win: win}, nil
}

// SetTitle updates the window title
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// SetChild replaces the window content.
func (w *Window) SetChild(child layout.Widget) {
	w.win.SetChild(toNative(child))
}

// Maximize requests the window be maximized.
func (w *Window) Maximize() {
	w.win.Maximize()
}

// Present shows the window and raises it.
func (w *Window) Present() {
	w.win.Present()
}
