package webkit

// touchTarget is the part of gtk.Widget that decides whether input reaches it.
type touchTarget interface {
	CanTarget() bool
	SetCanTarget(canTarget bool)
}

// navigationGestures is the part of webkit.Settings controlling swipe navigation.
type navigationGestures interface {
	EnableBackForwardNavigationGestures() bool
	SetEnableBackForwardNavigationGestures(enabled bool)
}

// applyTouch routes touch sequences to the page or back to the toolkit.
//
// GTK4 delivers touch events to any targetable widget; what turns touch into
// something else is WebKit's swipe gesture for back/forward navigation. With
// touch enabled the view is targetable and that gesture is off, so pinch and
// swipe are left to the page. Disabling hands horizontal swipes back to
// WebKit's navigation gesture.
func applyTouch(target touchTarget, settings navigationGestures, enabled bool) {
	target.SetCanTarget(true)
	if settings != nil {
		settings.SetEnableBackForwardNavigationGestures(!enabled)
	}
}

// touchEnabled reports whether the current widget and settings state delivers
// touch to the page. A view without settings has no navigation gesture.
func touchEnabled(target touchTarget, settings navigationGestures) bool {
	if !target.CanTarget() {
		return false
	}
	return settings == nil || !settings.EnableBackForwardNavigationGestures()
}
