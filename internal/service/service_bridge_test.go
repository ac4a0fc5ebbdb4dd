// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cra-client/internal/app"
	"github.com/MKhiriev/cra-client/internal/config"
	"github.com/MKhiriev/cra-client/internal/mock"
)

// newTestBridge — хелпер для создания bridgeService с моками
func newTestBridge(
	t *testing.T,
	ctrl *gomock.Controller,
	resolution *config.Resolution,
) (
	BridgeService,
	*mock.MockReachabilityProber,
	*mock.MockNavigator,
) {
	t.Helper()
	mockProber := mock.NewMockReachabilityProber(ctrl)
	mockNavigator := mock.NewMockNavigator(ctrl)

	svc := NewBridgeService(resolution, mockProber, mockNavigator, "1.2.3", nil)

	return svc, mockProber, mockNavigator
}

// resolvedConfig builds a ready resolution around the given URL with the rest
// of the settings fixed.
func resolvedConfig(t *testing.T, rawURL string) *config.Resolution {
	t.Helper()

	u, err := url.Parse(rawURL)
	require.NoError(t, err)

	return &config.Resolution{
		Config: &config.RuntimeConfig{
			AppURL:       u,
			AllowedHosts: map[string]struct{}{config.NormalizeHost(u.Hostname()): {}},
			WindowTitle:  "Kiosk",
			WindowWidth:  1024,
			WindowHeight: 768,
		},
	}
}

// ── BootstrapState ───────────────────────────────────────────────────────────

func TestBridgeService_BootstrapState_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := &config.Resolution{Err: errors.New("APP_URL must use HTTP or HTTPS.")}
	svc, _, _ := newTestBridge(t, ctrl, resolution)

	state := svc.BootstrapState(context.Background())

	assert.False(t, state.Ready)
	require.NotNil(t, state.ConfigError)
	assert.Equal(t, "APP_URL must use HTTP or HTTPS.", *state.ConfigError)
	assert.Nil(t, state.AppURL)
	assert.Nil(t, state.AppHost)
	assert.Equal(t, config.DefaultTitle, state.WindowTitle)
	assert.Equal(t, config.DefaultWidth, state.WindowWidth)
	assert.Equal(t, config.DefaultHeight, state.WindowHeight)
	assert.Equal(t, "1.2.3", state.Version)
	assert.False(t, state.Reachable)
	assert.Nil(t, state.ReachabilityError)
}

func TestBridgeService_BootstrapState_MissingConfigWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBridge(t, ctrl, &config.Resolution{})

	state := svc.BootstrapState(context.Background())

	assert.False(t, state.Ready)
	require.NotNil(t, state.ConfigError)
	assert.Equal(t, app.MsgConfigMissing, *state.ConfigError)
}

func TestBridgeService_BootstrapState_ReadyAndReachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, mockProber, _ := newTestBridge(t, ctrl, resolution)

	mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(nil)

	state := svc.BootstrapState(context.Background())

	assert.True(t, state.Ready)
	assert.Nil(t, state.ConfigError)
	require.NotNil(t, state.AppURL)
	assert.Equal(t, "http://192.168.50.55:3000", *state.AppURL)
	require.NotNil(t, state.AppHost)
	assert.Equal(t, "192.168.50.55", *state.AppHost)
	assert.Equal(t, "Kiosk", state.WindowTitle)
	assert.Equal(t, float64(1024), state.WindowWidth)
	assert.Equal(t, float64(768), state.WindowHeight)
	assert.True(t, state.Reachable)
	assert.Nil(t, state.ReachabilityError)
}

func TestBridgeService_BootstrapState_ReadyButUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, mockProber, _ := newTestBridge(t, ctrl, resolution)

	probeErr := errors.New("Could not reach server at http://192.168.50.55:3000: connection refused")
	mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(probeErr)

	state := svc.BootstrapState(context.Background())

	assert.True(t, state.Ready, "ошибка доступности не должна скрывать готовую конфигурацию")
	assert.False(t, state.Reachable)
	require.NotNil(t, state.ReachabilityError)
	assert.Equal(t, probeErr.Error(), *state.ReachabilityError)
}

// ── LaunchApp / RetryConnect ─────────────────────────────────────────────────

func TestBridgeService_LaunchApp_NavigatesWhenReachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, mockProber, mockNavigator := newTestBridge(t, ctrl, resolution)

	gomock.InOrder(
		mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(nil),
		mockNavigator.EXPECT().Navigate("http://192.168.50.55:3000").Return(nil),
	)

	require.NoError(t, svc.LaunchApp(context.Background()))
}

func TestBridgeService_LaunchApp_ConfigErrorShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configErr := errors.New("ALLOWED_HOSTS must include at least one host.")
	svc, _, _ := newTestBridge(t, ctrl, &config.Resolution{Err: configErr})

	err := svc.LaunchApp(context.Background())

	require.Error(t, err)
	assert.Equal(t, configErr, err)
}

func TestBridgeService_LaunchApp_MissingConfigFallsBackToGenericError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBridge(t, ctrl, &config.Resolution{})

	err := svc.LaunchApp(context.Background())

	require.Error(t, err)
	assert.Equal(t, app.MsgConfigMissing, err.Error())
}

func TestBridgeService_LaunchApp_ProbeFailureStopsNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, mockProber, _ := newTestBridge(t, ctrl, resolution)

	probeErr := errors.New("Server responded with status 500 when requesting http://192.168.50.55:3000")
	mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(probeErr)

	err := svc.LaunchApp(context.Background())

	require.Error(t, err)
	assert.Equal(t, probeErr, err, "ошибка проверки доступности отдаётся без обёртки")
}

func TestBridgeService_LaunchApp_NavigationFailureIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, mockProber, mockNavigator := newTestBridge(t, ctrl, resolution)

	gomock.InOrder(
		mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(nil),
		mockNavigator.EXPECT().Navigate("http://192.168.50.55:3000").Return(errors.New("window destroyed")),
	)

	err := svc.LaunchApp(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to navigate to APP_URL: window destroyed", err.Error())
}

func TestBridgeService_RetryConnect_RepeatsLaunchSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "https://app.internal.example")
	svc, mockProber, mockNavigator := newTestBridge(t, ctrl, resolution)

	gomock.InOrder(
		mockProber.EXPECT().Probe(gomock.Any(), resolution.Config.AppURL).Return(nil),
		mockNavigator.EXPECT().Navigate("https://app.internal.example").Return(nil),
	)

	require.NoError(t, svc.RetryConnect(context.Background()))
}

// ── AboutInfo ────────────────────────────────────────────────────────────────

func TestBridgeService_AboutInfo_WithConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolution := resolvedConfig(t, "http://192.168.50.55:3000")
	svc, _, _ := newTestBridge(t, ctrl, resolution)

	info := svc.AboutInfo()

	assert.Equal(t, "Kiosk", info.Title)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "192.168.50.55", info.AppHost)
	assert.Equal(t, "http://192.168.50.55:3000", info.AppURL)
}

func TestBridgeService_AboutInfo_WithoutConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBridge(t, ctrl, &config.Resolution{Err: errors.New("boom")})

	info := svc.AboutInfo()

	assert.Equal(t, config.DefaultTitle, info.Title)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, app.MsgNotConfigured, info.AppHost)
	assert.Equal(t, app.MsgNotConfigured, info.AppURL)
}

func TestBridgeService_NilResolutionBehavesAsMissingConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBridge(t, ctrl, nil)

	state := svc.BootstrapState(context.Background())

	assert.False(t, state.Ready)
	require.NotNil(t, state.ConfigError)
	assert.Equal(t, app.MsgConfigMissing, *state.ConfigError)
}
