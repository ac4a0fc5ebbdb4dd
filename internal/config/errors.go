package config

import (
	"errors"

	"github.com/MKhiriev/cra-client/internal/app"
)

// Validation errors with fixed message text, returned by [Resolve]. Errors
// that embed an offending value are built with fmt.Errorf at the failure
// site instead.
var (
	// ErrSchemeNotHTTP indicates an APP_URL with a scheme other than http
	// or https.
	ErrSchemeNotHTTP = errors.New(app.MsgAppURLScheme)
	// ErrNoHost indicates an APP_URL without a host component.
	ErrNoHost = errors.New(app.MsgAppURLNoHost)
	// ErrNoAllowedHosts indicates an ALLOWED_HOSTS value with no usable
	// entries.
	ErrNoAllowedHosts = errors.New(app.MsgAllowedHostsEmpty)
	// ErrAppURLHostNotAllowed indicates an allow-list that excludes the
	// APP_URL host.
	ErrAppURLHostNotAllowed = errors.New(app.MsgAllowedHostsMissingAppURL)
	// ErrLocalhostRelease indicates a localhost APP_URL target rejected by
	// a release build.
	ErrLocalhostRelease = errors.New(app.MsgLocalhostRelease)
)
