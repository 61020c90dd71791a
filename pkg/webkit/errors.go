package webkit

import "errors"

var (
	ErrWebViewNotInitialized = errors.New("webkit: WebView not initialized")
	ErrWindowNotInitialized  = errors.New("webkit: window not initialized")
	ErrNoApplication         = errors.New("webkit: no GTK application")
	ErrNoDisplay             = errors.New("webkit: no default display")
)
