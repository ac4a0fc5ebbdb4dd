// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// CRA Client configuration resolver, bridge services, and preflight tooling.
//
// All Msg* constants are human-readable message strings that are surfaced to
// the operator, either on the bootstrap error screen, in the startup log, or
// on the preflight command line. Several are fmt format templates (the
// placeholders are part of the contract). Keeping them in one place ensures
// the wording stays identical across every surface that reports the same
// failure.
package app

const (
	// MsgMissingRequiredSetting is returned when a required setting has no
	// value in the process environment, the merged client.env layers, or the
	// built-in defaults. Placeholders: setting key, environment variable name.
	MsgMissingRequiredSetting = "Missing required setting: %s. Set it via %s or client.env."

	// MsgAppURLInvalid is returned when APP_URL cannot be parsed as a URL.
	// Placeholder: the parse error.
	MsgAppURLInvalid = "APP_URL must be a valid URL: %s"

	// MsgAppURLScheme is returned when APP_URL parses but carries a scheme
	// other than http or https.
	MsgAppURLScheme = "APP_URL must use HTTP or HTTPS."

	// MsgAppURLNoHost is returned when APP_URL parses but has an empty host
	// component.
	MsgAppURLNoHost = "APP_URL must include a host."

	// MsgAllowedHostsEmpty is returned when ALLOWED_HOSTS contains no
	// non-empty entries after splitting on commas.
	MsgAllowedHostsEmpty = "ALLOWED_HOSTS must include at least one host."

	// MsgAllowedHostsMissingAppURL is returned when the APP_URL host is not a
	// member of the ALLOWED_HOSTS set. A kiosk that cannot navigate to its
	// own target is misconfigured.
	MsgAllowedHostsMissingAppURL = "ALLOWED_HOSTS must include the APP_URL host."

	// MsgNotBoolean is returned when a boolean setting holds a value outside
	// the accepted true/false token sets. Placeholders: setting key, raw value.
	MsgNotBoolean = "%s must be a boolean (true/false/1/0), got '%s'."

	// MsgNotNumeric is returned when a window dimension cannot be parsed as a
	// number. Placeholders: setting key, raw value.
	MsgNotNumeric = "%s must be numeric, got '%s'."

	// MsgNotPositive is returned when a window dimension parses but is zero
	// or negative. Placeholders: setting key, raw value.
	MsgNotPositive = "%s must be a positive number of pixels, got '%s'."

	// MsgLocalhostRelease is returned by release builds when APP_URL points
	// at a localhost-class host and the override flag is not set.
	MsgLocalhostRelease = "APP_URL host resolves to localhost in release build. Use a non-localhost target, or set CRA_CLIENT_ALLOW_LOCALHOST_RELEASE=true for diagnostic builds."

	// MsgCreateConfigDir is returned when the per-user configuration
	// directory cannot be created. Placeholders: directory path, OS error.
	MsgCreateConfigDir = "Could not create config directory '%s': %s"

	// MsgCreateDefaultConfig is returned when writing the auto-generated
	// default client.env fails. Placeholders: file path, OS error.
	MsgCreateDefaultConfig = "Could not create default config file '%s': %s"

	// MsgMigrateLegacyConfig is returned when an auto-generated client.env
	// carrying the legacy APP_URL line cannot be rewritten in place.
	// Placeholders: file path, OS error.
	MsgMigrateLegacyConfig = "Could not migrate legacy config file '%s': %s"

	// MsgServerUnreachable is returned when the reachability probe cannot
	// complete an HTTP exchange with the target at all. Placeholders: probed
	// URL, transport error.
	MsgServerUnreachable = "Could not reach server at %s: %s"

	// MsgServerBadStatus is returned when the probe receives a response whose
	// status class marks the target as not serviceable. Placeholders: status
	// code, probed URL.
	MsgServerBadStatus = "Server responded with status %d when requesting %s"

	// MsgConfigMissing is returned by bridge commands that require a resolved
	// runtime configuration when resolution failed at startup.
	MsgConfigMissing = "Runtime configuration is missing."

	// MsgNavigateFailed is returned when the shell cannot point the webview
	// at the resolved APP_URL. Placeholder: the navigation error.
	MsgNavigateFailed = "Failed to navigate to APP_URL: %s"

	// MsgNotConfigured is the About-dialog placeholder shown for the target
	// URL when no runtime configuration could be resolved.
	MsgNotConfigured = "not-configured"

	// MsgUnknownHost is the About-dialog placeholder shown for the target
	// host when no runtime configuration could be resolved.
	MsgUnknownHost = "unknown-host"
)
