// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the command bridge between the embedded page and
// the shell: bootstrap state for the loading screen, the launch/retry
// sequence, and the about dialog payload.
package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/cra-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// ReachabilityProber checks whether the configured application server answers
// HTTP at all.
type ReachabilityProber interface {
	// Probe issues one bounded GET against u. A nil result means reachable;
	// otherwise the error carries user-facing text for the bootstrap screen.
	Probe(ctx context.Context, u *url.URL) error
}

// Navigator points the kiosk window at a new location. The host windowing
// layer supplies the implementation.
type Navigator interface {
	Navigate(rawURL string) error
}

// BridgeService is the command surface the embedded page invokes over the
// shell bridge.
type BridgeService interface {
	// BootstrapState reports what the loading screen needs to render: the
	// resolved configuration or its error, plus a live reachability check
	// when configuration is ready.
	BootstrapState(ctx context.Context) models.BootstrapState

	// LaunchApp verifies the server is reachable and navigates the window to
	// the configured application URL.
	LaunchApp(ctx context.Context) error

	// RetryConnect re-runs the launch sequence. The retry button on the
	// bootstrap screen is wired to this command.
	RetryConnect(ctx context.Context) error

	// AboutInfo returns the about-dialog payload. Never fails; placeholders
	// stand in when configuration did not resolve.
	AboutInfo() models.AboutInfo
}
