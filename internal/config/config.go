// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"sort"
	"strings"
)

// Built-in defaults applied when neither the process environment nor any
// client.env file provides a value.
const (
	DefaultTitle        = "CRA Client"
	DefaultWidth        = 1280.0
	DefaultHeight       = 800.0
	DefaultAppURL       = "http://192.168.50.55:3000"
	DefaultAllowedHosts = "192.168.50.55"
)

// Setting keys as they appear in client.env files.
const (
	KeyAppURL       = "APP_URL"
	KeyAllowedHosts = "ALLOWED_HOSTS"
	KeyWindowTitle  = "WINDOW_TITLE"
	KeyWindowWidth  = "WINDOW_WIDTH"
	KeyWindowHeight = "WINDOW_HEIGHT"
)

// Environment variable names overriding the client.env keys. The localhost
// override is special: its full variable name doubles as its client.env key.
const (
	EnvAppURL                = "CRA_CLIENT_APP_URL"
	EnvAllowedHosts          = "CRA_CLIENT_ALLOWED_HOSTS"
	EnvWindowTitle           = "CRA_CLIENT_WINDOW_TITLE"
	EnvWindowWidth           = "CRA_CLIENT_WINDOW_WIDTH"
	EnvWindowHeight          = "CRA_CLIENT_WINDOW_HEIGHT"
	EnvAllowLocalhostRelease = "CRA_CLIENT_ALLOW_LOCALHOST_RELEASE"
)

// envPrefix is stripped down to the env tag names on [envOverrides].
const envPrefix = "CRA_CLIENT_"

// RuntimeConfig is the immutable, fully validated configuration snapshot
// produced by [Resolve]. It is created once at startup and shared read-only
// by every downstream consumer; nothing mutates it afterwards.
type RuntimeConfig struct {
	// AppURL is the absolute http/https navigation target.
	AppURL *url.URL

	// AllowedHosts is the set of normalized hosts the webview may navigate
	// to. It always contains AppURL's host.
	AllowedHosts map[string]struct{}

	// WindowTitle is the shell window title.
	WindowTitle string

	// WindowWidth and WindowHeight are the shell window dimensions in
	// pixels, always positive.
	WindowWidth  float64
	WindowHeight float64
}

// AppHost returns the normalized host component of AppURL.
func (c *RuntimeConfig) AppHost() string {
	return NormalizeHost(c.AppURL.Hostname())
}

// AllowedHostList returns the allow-list as a sorted slice, ready for
// logging and display.
func (c *RuntimeConfig) AllowedHostList() []string {
	hosts := make([]string, 0, len(c.AllowedHosts))
	for host := range c.AllowedHosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	return hosts
}

// NormalizeHost trims and lowercases a hostname. Allow-list membership is
// always decided on normalized hosts.
func NormalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}
