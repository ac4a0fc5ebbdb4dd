// Package probe implements the pre-navigation reachability check against
// the configured application server.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/cra-client/internal/app"
	"github.com/MKhiriev/cra-client/internal/logger"
)

const (
	// probeTimeout bounds one probe end to end, redirects included.
	probeTimeout = 8 * time.Second

	// maxRedirects matches the shell's tolerance for login-page redirect
	// chains.
	maxRedirects = 5
)

// Prober issues bounded GET probes to confirm the target server answers
// HTTP at all. Authentication challenges count as reachable; the probe asks
// about liveness, not authorization.
type Prober struct {
	client *resty.Client
	log    *logger.Logger
}

// New builds a Prober with the fixed timeout and redirect cap.
func New(log *logger.Logger) *Prober {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetTimeout(probeTimeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	return &Prober{client: client, log: log}
}

// Probe issues one GET against u. A nil result means the server is present,
// even if it demands authentication. The returned error text is
// user-facing and retryable; callers surface it on the bootstrap screen.
func (p *Prober) Probe(ctx context.Context, u *url.URL) error {
	resp, err := p.client.R().SetContext(ctx).Get(u.String())
	if err != nil {
		p.log.Warn().Str("url", u.String()).Err(err).Msg("probe transport failure")
		return fmt.Errorf(app.MsgServerUnreachable, u, err)
	}

	status := resp.StatusCode()
	if (status >= 200 && status < 400) || status == http.StatusUnauthorized || status == http.StatusForbidden {
		p.log.Debug().Str("url", u.String()).Int("status", status).Msg("probe ok")
		return nil
	}

	p.log.Warn().Str("url", u.String()).Int("status", status).Msg("probe rejected status")
	return fmt.Errorf(app.MsgServerBadStatus, status, u)
}
