package client

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cra-client/internal/config"
	"github.com/MKhiriev/cra-client/internal/diag"
)

// isolateRuntime — хелпер, уводит все источники конфигурации во временные каталоги
func isolateRuntime(t *testing.T) {
	t.Helper()

	// эквивалент testing.T.Chdir для тулчейнов без него
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", configHome)

	for _, name := range []string{
		config.EnvAppURL,
		config.EnvAllowedHosts,
		config.EnvWindowTitle,
		config.EnvWindowWidth,
		config.EnvWindowHeight,
		config.EnvAllowLocalhostRelease,
	} {
		t.Setenv(name, "")
	}
}

func TestNewApp_ReadyWiring(t *testing.T) {
	isolateRuntime(t)
	t.Setenv(config.EnvAppURL, "http://app.lan:3000")
	t.Setenv(config.EnvAllowedHosts, "app.lan,fallback.lan")

	shell := NewApp("9.9.9", nil)

	require.True(t, shell.Ready())
	assert.Equal(t, config.DefaultTitle, shell.WindowTitle())
	assert.Equal(t, config.DefaultWidth, shell.WindowWidth())
	assert.Equal(t, config.DefaultHeight, shell.WindowHeight())
	assert.NotEmpty(t, shell.InitScript())

	assert.True(t, shell.AllowNavigation("http://app.lan:3000/login"))
	assert.True(t, shell.AllowNavigation("http://fallback.lan/health"))
	assert.False(t, shell.AllowNavigation("https://evil.example/"))

	info := shell.Bridge().AboutInfo()
	assert.Equal(t, "9.9.9", info.Version)
	assert.Equal(t, "app.lan", info.AppHost)
	assert.Equal(t, "http://app.lan:3000", info.AppURL)
}

func TestNewApp_WritesStartupLogRun(t *testing.T) {
	isolateRuntime(t)
	t.Setenv(config.EnvAppURL, "http://app.lan:3000")
	t.Setenv(config.EnvAllowedHosts, "app.lan")

	NewApp("9.9.9", nil)

	base, err := os.UserConfigDir()
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(base, "CRA Client", "logs", "startup.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, diag.Banner, lines[0])
	assert.Equal(t, "startup_result=ok", lines[len(lines)-1])
	assert.Contains(t, lines, "version=9.9.9")
	assert.Contains(t, lines, "resolved_app_url=http://app.lan:3000")
}

// TestNewApp_ConfigErrorKeepsShellUsable covers the degraded mode: the window
// still gets default geometry, internal pages still load, and the error is
// visible through both the bridge and the startup log.
func TestNewApp_ConfigErrorKeepsShellUsable(t *testing.T) {
	isolateRuntime(t)
	t.Setenv(config.EnvAppURL, "ftp://files.example")
	t.Setenv(config.EnvAllowedHosts, "files.example")

	shell := NewApp("9.9.9", nil)

	assert.False(t, shell.Ready())
	assert.Equal(t, config.DefaultTitle, shell.WindowTitle())
	assert.Equal(t, config.DefaultWidth, shell.WindowWidth())
	assert.Equal(t, config.DefaultHeight, shell.WindowHeight())

	// наружу можно только на внутренние адреса: список разрешённых хостов пуст
	assert.True(t, shell.AllowNavigation("about:blank"))
	assert.False(t, shell.AllowNavigation("http://files.example/"))

	state := shell.Bridge().BootstrapState(context.Background())
	assert.False(t, state.Ready)
	require.NotNil(t, state.ConfigError)
	assert.Equal(t, config.ErrSchemeNotHTTP.Error(), *state.ConfigError)

	base, err := os.UserConfigDir()
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(base, "CRA Client", "logs", "startup.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "startup_result=error:"+config.ErrSchemeNotHTTP.Error())
}
