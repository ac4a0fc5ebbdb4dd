package diag

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/cra-client/internal/app"
)

// Banner brackets one run's entries in the startup log.
const Banner = "----- CRA Client startup -----"

const (
	logsDirName        = "logs"
	startupLogFileName = "startup.log"
)

// userConfigDir is swapped in tests to keep log writes away from the real
// per-user directory.
var userConfigDir = os.UserConfigDir

// StartupLog appends diagnostic lines to the per-user startup log file.
// Every write is best-effort: a kiosk with a broken profile directory must
// still boot, so failures are swallowed and the shell carries on.
type StartupLog struct {
	path string
}

// NewStartupLog returns a StartupLog writing to the default per-user
// location. The zero path disables writes on hosts without a per-user
// configuration directory.
func NewStartupLog() *StartupLog {
	base, err := userConfigDir()
	if err != nil {
		return &StartupLog{}
	}

	return &StartupLog{
		path: filepath.Join(base, app.ProductDirName, logsDirName, startupLogFileName),
	}
}

// NewStartupLogAt returns a StartupLog writing to an explicit path, for
// tests and tooling that relocate the log.
func NewStartupLogAt(path string) *StartupLog {
	return &StartupLog{path: path}
}

// Append writes one line to the startup log, creating the logs directory on
// first use.
func (l *StartupLog) Append(line string) {
	if l == nil || l.path == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer file.Close()

	_, _ = file.WriteString(line + "\n")
}

// AppendAll writes every line in order.
func (l *StartupLog) AppendAll(lines []string) {
	for _, line := range lines {
		l.Append(line)
	}
}

// WriteRun writes one run's banner followed by every recorded message. The
// caller appends the startup result afterwards, once it is known.
func (l *StartupLog) WriteRun(rec *Recorder) {
	l.Append(Banner)
	l.AppendAll(rec.Messages())
}
