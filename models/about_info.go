package models

// AboutInfo is the payload behind the About dialog (Alt+Shift+A in the
// shell). Unlike BootstrapState it never carries nils: when configuration is
// missing the URL fields hold placeholder strings so the dialog always
// renders something legible on a kiosk with no keyboard.
type AboutInfo struct {
	// Title is the resolved window title, or the built-in default when no
	// configuration resolved.
	Title string `json:"title"`

	// Version is the application version.
	Version string `json:"version"`

	// AppHost is the normalized target host, or a placeholder when no
	// configuration resolved.
	AppHost string `json:"app_host"`

	// AppURL is the navigation target, or a placeholder when no
	// configuration resolved.
	AppURL string `json:"app_url"`
}
