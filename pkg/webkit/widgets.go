// Package webkit binds the layout widget interfaces to GTK4 and WebKitGTK 6.
package webkit

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/panewall/internal/ui/layout"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ layout.BoxWidget       = (*Box)(nil)
	_ layout.SeparatorWidget = (*Separator)(nil)
	_ layout.WebViewWidget   = (*WebView)(nil)
	_ layout.WindowWidget    = (*Window)(nil)
)

// nativeWidget is implemented by every wrapper in this package so containers
// can reach the GTK widget behind a layout.Widget.
type nativeWidget interface {
	native() gtk.Widgetter
}

// toNative returns the GTK widget behind w, or nil for foreign implementations.
func toNative(w layout.Widget) gtk.Widgetter {
	if n, ok := w.(nativeWidget); ok {
		return n.native()
	}
	return nil
}

func orientation(o layout.Orientation) gtk.Orientation {
	if o == layout.OrientationVertical {
		return gtk.OrientationVertical
	}
	return gtk.OrientationHorizontal
}

// widget holds the layout.Widget methods shared by all wrappers.
type widget struct {
	inner *gtk.Widget
}

func (w widget) SetHExpand(expand bool)      { w.inner.SetHExpand(expand) }
func (w widget) SetVExpand(expand bool)      { w.inner.SetVExpand(expand) }
func (w widget) SetSizeRequest(width, h int) { w.inner.SetSizeRequest(width, h) }
func (w widget) AddCSSClass(cssClass string) { w.inner.AddCSSClass(cssClass) }

func (w widget) setMargins(margin int) {
	w.inner.SetMarginStart(margin)
	w.inner.SetMarginEnd(margin)
	w.inner.SetMarginTop(margin)
	w.inner.SetMarginBottom(margin)
}

// Box wraps gtk.Box for layout management
type Box struct {
	widget
	box *gtk.Box
}

// NewBox creates a new Box with the given orientation and spacing
func NewBox(o layout.Orientation, spacing int) *Box {
	box := gtk.NewBox(orientation(o), spacing)
	return &Box{widget: widget{inner: &box.Widget}, box: box}
}

// Append adds a child to the end of the box. Children not created by this
// package are ignored.
func (b *Box) Append(child layout.Widget) {
	if b == nil || b.box == nil {
		return
	}
	if native := toNative(child); native != nil {
		b.box.Append(native)
	}
}

// SetMargins sets all four margins of the box.
func (b *Box) SetMargins(margin int) {
	b.setMargins(margin)
}

func (b *Box) native() gtk.Widgetter { return b.box }

// Separator wraps gtk.Separator
type Separator struct {
	widget
	sep *gtk.Separator
}

// NewSeparator creates a separator line perpendicular to o's layout axis.
func NewSeparator(o layout.Orientation) *Separator {
	sep := gtk.NewSeparator(orientation(o))
	return &Separator{widget: widget{inner: &sep.Widget}, sep: sep}
}

func (s *Separator) native() gtk.Widgetter { return s.sep }
