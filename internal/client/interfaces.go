// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/cra-client/internal/service"

// Shell defines what a host windowing layer needs from the kiosk runtime:
// window parameters, the page bootstrap script, the navigation decision
// callback, and the command bridge the embedded page invokes.
type Shell interface {
	// WindowTitle returns the configured window title, or the default when
	// configuration did not resolve.
	WindowTitle() string

	// WindowWidth returns the configured window width in pixels.
	WindowWidth() float64

	// WindowHeight returns the configured window height in pixels.
	WindowHeight() float64

	// InitScript returns the JavaScript to inject before any page script runs.
	InitScript() string

	// AllowNavigation decides whether the window may navigate to rawURL.
	// Denials are logged; the window stays on the current page.
	AllowNavigation(rawURL string) bool

	// Bridge returns the command surface for the embedded page.
	Bridge() service.BridgeService
}
