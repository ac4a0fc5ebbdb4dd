// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/cra-client/internal/app"
	"github.com/MKhiriev/cra-client/internal/diag"
)

// Options control one resolution run.
type Options struct {
	// Version is recorded in the diagnostics sequence, typically the
	// ldflags-injected build version.
	Version string

	// RunID correlates this run's diagnostics with the structured log
	// stream. Empty omits the run_id entry.
	RunID string

	// DiagnosticBuild skips the release localhost guard. Callers wire
	// buildmode.Diagnostic here; tests set it directly.
	DiagnosticBuild bool

	// BaseDir overrides the per-user configuration directory holding
	// client.env and the startup log. Empty means the platform default.
	BaseDir string
}

// Resolution is the two-variant startup outcome. Exactly one of Config and
// Err is set; Diagnostics carries the audit trail either way and records,
// for every resolved setting, which source provided it.
type Resolution struct {
	Config      *RuntimeConfig
	Err         error
	Diagnostics *diag.Recorder
}

// Ready reports whether resolution produced a usable RuntimeConfig.
func (r *Resolution) Ready() bool {
	return r.Err == nil && r.Config != nil
}

// Runtime returns the resolved configuration, or the error standing in for
// it. Callers that need a hard answer (launch, retry) use this instead of
// inspecting the fields.
func (r *Resolution) Runtime() (*RuntimeConfig, error) {
	if r.Config != nil {
		return r.Config, nil
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return nil, errors.New(app.MsgConfigMissing)
}

func (r *Resolution) diag(format string, args ...any) {
	if r.Diagnostics == nil {
		r.Diagnostics = &diag.Recorder{}
	}
	r.Diagnostics.Recordf(format, args...)
}

// Resolve runs the full startup sequence: legacy migration, first-run
// default creation, file loading and merging, then validation. The first
// failure wins and resolution stops there. The side-effecting steps run
// before any value is read so that first-run users resolve against the
// freshly written template.
func Resolve(opts Options) *Resolution {
	res := &Resolution{Diagnostics: &diag.Recorder{}}
	res.diag("timestamp=%s", diag.Timestamp())
	res.diag("version=%s", opts.Version)
	if opts.RunID != "" {
		res.diag("run_id=%s", opts.RunID)
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = defaultBaseDir()
	}

	if err := migrateLegacyClientEnvFile(baseDir); err != nil {
		res.diag("migrate_legacy_config_file=error:%s", err)
		res.Err = err
		return res
	}

	if err := ensureDefaultClientEnvFile(baseDir); err != nil {
		res.diag("ensure_default_config_file=error:%s", err)
		res.Err = err
		return res
	}

	files, err := loadClientEnvValues(baseDir)
	if err != nil {
		res.Err = err
		return res
	}

	return resolveSettings(files, opts, res)
}

// resolveSettings validates the merged mapping against the process
// environment. It performs no filesystem work, so tests can drive it with a
// pre-built mapping.
func resolveSettings(files map[string]string, opts Options, res *Resolution) *Resolution {
	reader, err := newSourceReader(files)
	if err != nil {
		res.Err = err
		return res
	}

	appURLRaw, appURLSource, err := reader.required(KeyAppURL, EnvAppURL)
	if err != nil {
		res.diag("app_url_source=missing (%s or %s in client.env)", EnvAppURL, KeyAppURL)
		res.Err = err
		return res
	}
	res.diag("app_url_source=%s", appURLSource)

	appURL, err := url.Parse(appURLRaw)
	if err != nil {
		res.Err = fmt.Errorf(app.MsgAppURLInvalid, err)
		return res
	}
	if appURL.Scheme != "http" && appURL.Scheme != "https" {
		res.Err = ErrSchemeNotHTTP
		return res
	}
	if appURL.Hostname() == "" {
		res.Err = ErrNoHost
		return res
	}
	appHost := NormalizeHost(appURL.Hostname())

	allowedRaw, allowedSource, err := reader.required(KeyAllowedHosts, EnvAllowedHosts)
	if err != nil {
		res.diag("allowed_hosts_source=missing (%s or %s in client.env)", EnvAllowedHosts, KeyAllowedHosts)
		res.Err = err
		return res
	}
	res.diag("allowed_hosts_source=%s", allowedSource)

	allowedHosts := make(map[string]struct{})
	for _, entry := range strings.Split(allowedRaw, ",") {
		if host := NormalizeHost(entry); host != "" {
			allowedHosts[host] = struct{}{}
		}
	}
	if len(allowedHosts) == 0 {
		res.Err = ErrNoAllowedHosts
		return res
	}
	if _, ok := allowedHosts[appHost]; !ok {
		res.Err = ErrAppURLHostNotAllowed
		return res
	}

	allowOverride, overrideSource, err := reader.boolean(EnvAllowLocalhostRelease, EnvAllowLocalhostRelease, false)
	if err != nil {
		res.Err = err
		return res
	}
	res.diag("localhost_release_override=%v (%s)", allowOverride, overrideSource)

	if !opts.DiagnosticBuild {
		if isLocalhostClass(appHost) && !allowOverride {
			res.diag("release_localhost_guard=blocked")
			res.Err = ErrLocalhostRelease
			return res
		}
		res.diag("release_localhost_guard=pass")
	} else {
		res.diag("release_localhost_guard=debug-skip")
	}

	title, titleSource, ok := reader.optional(KeyWindowTitle, EnvWindowTitle)
	if !ok {
		title, titleSource = DefaultTitle, "default "+DefaultTitle
	}
	res.diag("window_title_source=%s", titleSource)

	width, widthSource, err := reader.dimension(KeyWindowWidth, EnvWindowWidth, DefaultWidth)
	if err != nil {
		res.Err = err
		return res
	}
	res.diag("window_width_source=%s", widthSource)

	height, heightSource, err := reader.dimension(KeyWindowHeight, EnvWindowHeight, DefaultHeight)
	if err != nil {
		res.Err = err
		return res
	}
	res.diag("window_height_source=%s", heightSource)

	cfg := &RuntimeConfig{
		AppURL:       appURL,
		AllowedHosts: allowedHosts,
		WindowTitle:  title,
		WindowWidth:  width,
		WindowHeight: height,
	}
	res.diag("resolved_app_url=%s", cfg.AppURL)
	res.diag("resolved_allowed_hosts=%s", strings.Join(cfg.AllowedHostList(), ","))

	res.Config = cfg
	return res
}

// isLocalhostClass reports whether host is one of the loopback names the
// release guard blocks. Separate from the navigation gate's internal-host
// bypass even though the entries match; the two policies block at
// different times.
func isLocalhostClass(host string) bool {
	switch host {
	case "localhost", "127.0.0.1", "::1", "tauri.localhost":
		return true
	default:
		return false
	}
}
