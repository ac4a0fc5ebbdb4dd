package client

import (
	"github.com/MKhiriev/cra-client/internal/buildmode"
	"github.com/MKhiriev/cra-client/internal/config"
	"github.com/MKhiriev/cra-client/internal/diag"
	"github.com/MKhiriev/cra-client/internal/logger"
	"github.com/MKhiriev/cra-client/internal/navigation"
	"github.com/MKhiriev/cra-client/internal/probe"
	"github.com/MKhiriev/cra-client/internal/service"
	"github.com/MKhiriev/cra-client/internal/webview"
)

// App is the assembled kiosk runtime. It implements [Shell].
type App struct {
	resolution *config.Resolution
	bridge     service.BridgeService
	gate       *navigation.Gate
	startupLog *diag.StartupLog

	version string
	logger  *logger.Logger
}

// NewApp resolves runtime configuration, records the startup log run and
// wires the command bridge. The navigator comes from the host windowing
// layer; everything else is assembled here. Configuration problems do not
// fail construction: they surface through the bridge's bootstrap state so
// the window can render them.
func NewApp(version string, navigator service.Navigator) *App {
	runID := diag.NewRunID()
	log := logger.NewClientLogger("client")
	log.Logger = log.With().Str("run_id", runID).Logger()

	resolution := config.Resolve(config.Options{
		Version:         version,
		RunID:           runID,
		DiagnosticBuild: buildmode.Diagnostic,
	})

	startupLog := diag.NewStartupLog()
	startupLog.WriteRun(resolution.Diagnostics)
	if resolution.Err != nil {
		startupLog.Append("startup_result=error:" + resolution.Err.Error())
		log.Warn().Err(resolution.Err).Msg("configuration did not resolve")
	} else {
		startupLog.Append("startup_result=ok")
		log.Info().Str("app_url", resolution.Config.AppURL.String()).Msg("configuration resolved")
	}

	var allowedHosts map[string]struct{}
	if resolution.Config != nil {
		allowedHosts = resolution.Config.AllowedHosts
	}

	prober := probe.New(log)
	bridge := service.NewBridgeService(resolution, prober, navigator, version, log)
	gate := navigation.NewGate(allowedHosts, log, startupLog)

	return &App{
		resolution: resolution,
		bridge:     bridge,
		gate:       gate,
		startupLog: startupLog,
		version:    version,
		logger:     log,
	}
}

// Ready reports whether runtime configuration resolved.
func (a *App) Ready() bool {
	return a.resolution.Ready()
}

// Resolution exposes the startup outcome, diagnostics included.
func (a *App) Resolution() *config.Resolution {
	return a.resolution
}

// WindowTitle returns the configured title, or the default when
// configuration did not resolve. The error screen still needs a titled
// window.
func (a *App) WindowTitle() string {
	if a.resolution.Config != nil {
		return a.resolution.Config.WindowTitle
	}
	return config.DefaultTitle
}

// WindowWidth returns the configured window width in pixels.
func (a *App) WindowWidth() float64 {
	if a.resolution.Config != nil {
		return a.resolution.Config.WindowWidth
	}
	return config.DefaultWidth
}

// WindowHeight returns the configured window height in pixels.
func (a *App) WindowHeight() float64 {
	if a.resolution.Config != nil {
		return a.resolution.Config.WindowHeight
	}
	return config.DefaultHeight
}

// InitScript returns the page bootstrap script for the host to inject.
func (a *App) InitScript() string {
	return webview.InitScript()
}

// AllowNavigation decides whether the window may navigate to rawURL.
func (a *App) AllowNavigation(rawURL string) bool {
	return a.gate.Allow(rawURL)
}

// Bridge returns the command surface for the embedded page.
func (a *App) Bridge() service.BridgeService {
	return a.bridge
}
