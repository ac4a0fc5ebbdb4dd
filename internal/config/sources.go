package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/cra-client/internal/app"
)

// envOverrides is a snapshot of the CRA_CLIENT_* process environment, taken
// once per resolution. Pointer fields stay nil for unset variables; set but
// blank variables are treated as absent by the reader after trimming, so
// either way a blank override falls through to the next layer.
type envOverrides struct {
	AppURL                *string `env:"APP_URL"`
	AllowedHosts          *string `env:"ALLOWED_HOSTS"`
	WindowTitle           *string `env:"WINDOW_TITLE"`
	WindowWidth           *string `env:"WINDOW_WIDTH"`
	WindowHeight          *string `env:"WINDOW_HEIGHT"`
	AllowLocalhostRelease *string `env:"ALLOW_LOCALHOST_RELEASE"`
}

// snapshotEnv populates envOverrides from the process environment using the
// caarlos0/env library with the CRA_CLIENT_ prefix applied to every tag.
func snapshotEnv() (envOverrides, error) {
	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: envPrefix}); err != nil {
		return envOverrides{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return overrides, nil
}

// value returns the snapshot slot for the given full variable name, nil for
// unknown variables.
func (o *envOverrides) value(name string) *string {
	switch name {
	case EnvAppURL:
		return o.AppURL
	case EnvAllowedHosts:
		return o.AllowedHosts
	case EnvWindowTitle:
		return o.WindowTitle
	case EnvWindowWidth:
		return o.WindowWidth
	case EnvWindowHeight:
		return o.WindowHeight
	case EnvAllowLocalhostRelease:
		return o.AllowLocalhostRelease
	default:
		return nil
	}
}

// sourceReader answers "what is the value of setting X and which layer
// provided it". Precedence, highest first: process environment, merged
// client.env mapping, caller-supplied default. A layer only wins with a
// value that is non-empty after trimming.
type sourceReader struct {
	env  envOverrides
	file map[string]string
}

func newSourceReader(file map[string]string) (*sourceReader, error) {
	overrides, err := snapshotEnv()
	if err != nil {
		return nil, err
	}

	return &sourceReader{env: overrides, file: file}, nil
}

// optional returns the trimmed value for fileKey plus its provenance label.
// envVar may be empty for settings without an environment override.
func (r *sourceReader) optional(fileKey, envVar string) (value, source string, ok bool) {
	if envVar != "" {
		if raw := r.env.value(envVar); raw != nil {
			if trimmed := strings.TrimSpace(*raw); trimmed != "" {
				return trimmed, "process env " + envVar, true
			}
		}
	}

	if raw, found := r.file[fileKey]; found {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			return trimmed, "client.env " + fileKey, true
		}
	}

	return "", "", false
}

// required is optional with a missing-value error naming both acceptable
// sources.
func (r *sourceReader) required(fileKey, envVar string) (string, string, error) {
	value, source, ok := r.optional(fileKey, envVar)
	if !ok {
		name := envVar
		if name == "" {
			name = "environment variable"
		}
		return "", "", fmt.Errorf(app.MsgMissingRequiredSetting, fileKey, name)
	}

	return value, source, nil
}

// boolean resolves an optional boolean setting, falling back to the given
// default with a "default" provenance label.
func (r *sourceReader) boolean(fileKey, envVar string, fallback bool) (bool, string, error) {
	raw, source, ok := r.optional(fileKey, envVar)
	if !ok {
		return fallback, fmt.Sprintf("default %v", fallback), nil
	}

	value, valid := parseBool(raw)
	if !valid {
		return false, "", fmt.Errorf(app.MsgNotBoolean, fileKey, raw)
	}

	return value, source, nil
}

// dimension resolves an optional window dimension. Values must parse as
// positive floating-point pixel counts.
func (r *sourceReader) dimension(fileKey, envVar string, fallback float64) (float64, string, error) {
	raw, source, ok := r.optional(fileKey, envVar)
	if !ok {
		return fallback, fmt.Sprintf("default %v", fallback), nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, "", fmt.Errorf(app.MsgNotNumeric, fileKey, raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, "", fmt.Errorf(app.MsgNotPositive, fileKey, raw)
	}

	return value, source, nil
}

// parseBool maps the accepted boolean token sets, case-insensitively. The
// second result reports whether raw belonged to either set.
func parseBool(raw string) (value, valid bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
