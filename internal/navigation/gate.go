// Package navigation decides whether the shell's webview may load a URL.
//
// The decision is a pure predicate over the URL scheme and host: framework
// internal schemes always pass, http and https targets need a host that is
// either one of the fixed internal hostnames or a member of the resolved
// allow-list, and everything else is denied. The [Gate] wrapper adds denial
// logging for forensic review; it performs no recovery.
package navigation

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/MKhiriev/cra-client/internal/config"
	"github.com/MKhiriev/cra-client/internal/diag"
	"github.com/MKhiriev/cra-client/internal/logger"
)

// IsAllowed reports whether the webview may navigate to u given the
// allow-list. It is reentrant and side-effect free.
func IsAllowed(u *url.URL, allowedHosts map[string]struct{}) bool {
	switch u.Scheme {
	case "internal-app", "internal-asset", "about", "data", "blob":
		return true
	case "http", "https":
		host := config.NormalizeHost(u.Hostname())
		if host == "" {
			return false
		}
		if isInternalHost(host) {
			return true
		}
		_, ok := allowedHosts[host]
		return ok
	default:
		return false
	}
}

// isInternalHost matches the fixed loopback and internal-webview hostnames
// that bypass the allow-list. The resolver's release guard keeps its own
// copy of these entries; the two policies block at different times.
func isInternalHost(host string) bool {
	switch host {
	case "tauri.localhost", "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

// Gate is the navigation predicate bound to one resolved allow-list. The
// allow-list is captured at construction and never mutated, so a Gate is
// safe for concurrent use from the host's navigation callback.
type Gate struct {
	allowedHosts map[string]struct{}
	allowedCSV   string
	log          *logger.Logger
	startupLog   *diag.StartupLog
}

// NewGate builds a Gate over the given allow-list. hosts may be nil when no
// runtime configuration resolved; the gate then only admits internal
// schemes and hosts. Either logging sink may be nil.
func NewGate(hosts map[string]struct{}, log *logger.Logger, startupLog *diag.StartupLog) *Gate {
	if log == nil {
		log = logger.Nop()
	}

	sorted := make([]string, 0, len(hosts))
	for host := range hosts {
		sorted = append(sorted, host)
	}
	sort.Strings(sorted)

	return &Gate{
		allowedHosts: hosts,
		allowedCSV:   strings.Join(sorted, ","),
		log:          log,
		startupLog:   startupLog,
	}
}

// Allow evaluates one navigation attempt. Unparseable URLs are denied.
// Denials are appended to the startup log with the offending URL and the
// active allow-list.
func (g *Gate) Allow(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err == nil && IsAllowed(u, g.allowedHosts) {
		return true
	}

	g.startupLog.Append(fmt.Sprintf("blocked_navigation timestamp=%s url=%s allowed_hosts=%s",
		diag.Timestamp(), rawURL, g.allowedCSV))
	g.log.Warn().
		Str("url", rawURL).
		Str("allowed_hosts", g.allowedCSV).
		Msg("blocked navigation")

	return false
}
