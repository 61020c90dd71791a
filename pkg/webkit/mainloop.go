package webkit

import "runtime"

var isInitialized bool

// InitMainThread locks the current goroutine to the OS thread for GTK operations.
// This must be called before any GTK operations.
func InitMainThread() {
	if !isInitialized {
		runtime.LockOSThread()
		isInitialized = true
	}
}
