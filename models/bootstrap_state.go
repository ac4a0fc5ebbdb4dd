package models

// BootstrapState is the snapshot of startup state handed to the shell UI.
// The bootstrap screen renders it directly: either a "connecting" view with
// the resolved target, or an error view with the resolution failure.
type BootstrapState struct {
	// Ready reports whether runtime configuration resolved successfully.
	// When false, ConfigError carries the reason and the URL fields are nil.
	Ready bool `json:"ready"`

	// ConfigError is the operator-facing resolution error, nil when Ready.
	ConfigError *string `json:"config_error"`

	// AppURL is the resolved navigation target, nil when resolution failed.
	AppURL *string `json:"app_url"`

	// AppHost is the normalized host component of AppURL, nil when
	// resolution failed.
	AppHost *string `json:"app_host"`

	// WindowTitle is the resolved window title, or the built-in default
	// when resolution failed. The error window still needs a title and a
	// size, so the window fields are populated either way.
	WindowTitle string `json:"window_title"`

	// WindowWidth is the resolved window width in pixels.
	WindowWidth float64 `json:"window_width"`

	// WindowHeight is the resolved window height in pixels.
	WindowHeight float64 `json:"window_height"`

	// Version is the application version shown on the bootstrap screen.
	Version string `json:"version"`

	// Reachable reports the outcome of the startup reachability probe.
	// Always false when the probe did not run (configuration missing).
	Reachable bool `json:"reachable"`

	// ReachabilityError describes why the target was unreachable, nil when
	// the probe passed or did not run.
	ReachabilityError *string `json:"reachability_error"`
}
