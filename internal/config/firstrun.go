package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/cra-client/internal/app"
)

// userConfigDir is swapped in tests to keep resolution away from the real
// per-user directory.
var userConfigDir = os.UserConfigDir

// defaultBaseDir returns the product's per-user configuration directory,
// empty when the platform reports none.
func defaultBaseDir() string {
	base, err := userConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(base, app.ProductDirName)
}

// defaultClientEnvHeader marks auto-generated files. The legacy migration
// refuses to touch files without it, so hand-edited configs stay untouched.
const defaultClientEnvHeader = "# Auto-generated default configuration for CRA Client."

const (
	legacyAppURLLine  = "APP_URL=https://192.168.50.55"
	currentAppURLLine = "APP_URL=" + DefaultAppURL
)

const defaultClientEnvTemplate = defaultClientEnvHeader + `
# Update APP_URL and ALLOWED_HOSTS if your deployment target changes.
APP_URL=%s
ALLOWED_HOSTS=%s
WINDOW_TITLE=%s
WINDOW_WIDTH=%d
WINDOW_HEIGHT=%d
`

// defaultClientEnvContents renders the auto-generated client.env template.
func defaultClientEnvContents() string {
	return fmt.Sprintf(defaultClientEnvTemplate,
		DefaultAppURL,
		DefaultAllowedHosts,
		DefaultTitle,
		int64(DefaultWidth),
		int64(DefaultHeight),
	)
}

// ensureDefaultClientEnvFile writes the default template to the per-user
// location on first run. Hosts without a per-user configuration directory
// skip the step silently; existing files are never overwritten.
func ensureDefaultClientEnvFile(baseDir string) error {
	if baseDir == "" {
		return nil
	}
	path := filepath.Join(baseDir, clientEnvFileName)

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(app.MsgCreateConfigDir, dir, err)
	}

	if err := os.WriteFile(path, []byte(defaultClientEnvContents()), 0o644); err != nil {
		return fmt.Errorf(app.MsgCreateDefaultConfig, path, err)
	}

	return nil
}

// migrateLegacyClientEnvFile rewrites the insecure legacy APP_URL default
// inside auto-generated per-user files. Files lacking the auto-generated
// header or the exact legacy line are left alone, and read failures are
// tolerated; only the rewrite itself can fail.
func migrateLegacyClientEnvFile(baseDir string) error {
	if baseDir == "" {
		return nil
	}
	path := filepath.Join(baseDir, clientEnvFileName)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	text := string(content)
	if !strings.Contains(text, defaultClientEnvHeader) {
		return nil
	}
	if !strings.Contains(text, legacyAppURLLine) {
		return nil
	}

	updated := strings.ReplaceAll(text, legacyAppURLLine, currentAppURLLine)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf(app.MsgMigrateLegacyConfig, path, err)
	}

	return nil
}
