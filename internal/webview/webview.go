// Package webview carries the JavaScript the shell injects into the embedded
// browser before any page script runs. The script keeps every navigation
// inside the single kiosk window so the navigation gate sees all of them, and
// binds the Alt+Shift+A about dialog to the shell's invoke bridge.
package webview

import _ "embed"

//go:embed bootstrap.js
var initScript string

// InitScript returns the page-bootstrap script. Static asset; the host
// windowing layer is responsible for injecting it on every page load.
func InitScript() string {
	return initScript
}
