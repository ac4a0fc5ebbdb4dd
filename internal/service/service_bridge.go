package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cra-client/internal/app"
	"github.com/MKhiriev/cra-client/internal/config"
	"github.com/MKhiriev/cra-client/internal/logger"
	"github.com/MKhiriev/cra-client/models"
)

type bridgeService struct {
	resolution *config.Resolution
	prober     ReachabilityProber
	navigator  Navigator
	version    string

	logger *logger.Logger
}

// NewBridgeService wires the resolved configuration, the reachability prober
// and the window navigator into the command surface exposed to the embedded
// page. The resolution must come from [config.Resolve]; its error, if any, is
// what the bootstrap screen will show.
func NewBridgeService(resolution *config.Resolution, prober ReachabilityProber, navigator Navigator, version string, log *logger.Logger) BridgeService {
	if resolution == nil {
		resolution = &config.Resolution{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &bridgeService{
		resolution: resolution,
		prober:     prober,
		navigator:  navigator,
		version:    version,
		logger:     log,
	}
}

// BootstrapState never fails: configuration problems come back inside the
// state so the loading screen can render them. Window geometry falls back to
// the defaults when configuration did not resolve, keeping the error screen
// usable.
func (s *bridgeService) BootstrapState(ctx context.Context) models.BootstrapState {
	state := models.BootstrapState{
		WindowTitle:  config.DefaultTitle,
		WindowWidth:  config.DefaultWidth,
		WindowHeight: config.DefaultHeight,
		Version:      s.version,
	}

	if s.resolution.Err != nil {
		msg := s.resolution.Err.Error()
		state.ConfigError = &msg
		return state
	}

	cfg := s.resolution.Config
	if cfg == nil {
		msg := app.MsgConfigMissing
		state.ConfigError = &msg
		return state
	}

	appURL := cfg.AppURL.String()
	state.Ready = true
	state.AppURL = &appURL
	if host := cfg.AppURL.Hostname(); host != "" {
		state.AppHost = &host
	}
	state.WindowTitle = cfg.WindowTitle
	state.WindowWidth = cfg.WindowWidth
	state.WindowHeight = cfg.WindowHeight

	if err := s.prober.Probe(ctx, cfg.AppURL); err != nil {
		msg := err.Error()
		state.ReachabilityError = &msg
		s.logger.Warn().Str("url", appURL).Err(err).Msg("bootstrap probe failed")
	} else {
		state.Reachable = true
	}

	return state
}

func (s *bridgeService) LaunchApp(ctx context.Context) error {
	cfg, err := s.resolution.Runtime()
	if err != nil {
		return err
	}

	if err := s.prober.Probe(ctx, cfg.AppURL); err != nil {
		return err
	}

	target := cfg.AppURL.String()
	if err := s.navigator.Navigate(target); err != nil {
		s.logger.Error().Str("url", target).Err(err).Msg("navigation failed")
		return fmt.Errorf(app.MsgNavigateFailed, err)
	}

	s.logger.Info().Str("url", target).Msg("navigated to application")
	return nil
}

func (s *bridgeService) RetryConnect(ctx context.Context) error {
	return s.LaunchApp(ctx)
}

func (s *bridgeService) AboutInfo() models.AboutInfo {
	cfg := s.resolution.Config
	if cfg == nil {
		return models.AboutInfo{
			Title:   config.DefaultTitle,
			Version: s.version,
			AppHost: app.MsgNotConfigured,
			AppURL:  app.MsgNotConfigured,
		}
	}

	host := cfg.AppURL.Hostname()
	if host == "" {
		host = app.MsgUnknownHost
	}

	return models.AboutInfo{
		Title:   cfg.WindowTitle,
		Version: s.version,
		AppHost: host,
		AppURL:  cfg.AppURL.String(),
	}
}
