package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/client/internal/api"
	"github.com/placename-desk/placename-desk/client/internal/errors"
)

// DefaultBaseURL is the origin of the gazetteer service.
const DefaultBaseURL = "http://timespace-china.fudan.edu.cn"

// UserAgent replaces resty's default User-Agent on every request.
const UserAgent = "placename-desk"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client relays placename requests to the gazetteer. One Client is built per
// process by the composition root and shared by every caller; it is safe for
// concurrent use and holds no per-call state.
type Client struct {
	baseURL   string
	http      *resty.Client
	transport http.RoundTripper
	timeout   time.Duration
	debug     bool
	log       zerolog.Logger
}

// New constructs a Client talking to DefaultBaseURL. An error means the
// process environment is broken; callers treat it as fatal.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// No cookie jar: nothing a response sets may reach a later call.
	c.http = resty.New().
		SetCookieJar(nil).
		SetHeader("User-Agent", UserAgent)
	if c.transport != nil || c.debug {
		base := c.transport
		if base == nil {
			base = http.DefaultTransport
		}
		if c.debug {
			base = &debugTransport{base: base}
		}
		c.http.SetTransport(base)
	}
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}
	return c, nil
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Relay operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchPlacenames posts the query to the search endpoint and returns the
// response body unmodified.
func (c *Client) SearchPlacenames(ctx context.Context, q SearchQuery) (json.RawMessage, error) {
	start := time.Now()
	v, err := api.Search(ctx, c.http, c.baseURL, q)
	c.observe(errors.OpSearch, start, err)
	return v, err
}

// GetPlacename fetches the detail record for sysID. Surrounding whitespace is
// trimmed; a blank identifier fails with ErrEmptySysID before any request.
func (c *Client) GetPlacename(ctx context.Context, sysID string) (json.RawMessage, error) {
	start := time.Now()
	v, err := api.GetPlacename(ctx, c.http, c.baseURL, sysID)
	c.observe(errors.OpDetail, start, err)
	return v, err
}

func (c *Client) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := outcomeOK
	if k, ok := errors.KindOf(err); ok {
		outcome = k.String()
	} else if err != nil {
		outcome = outcomeUnknown
	}
	relayRequestsTotal.WithLabelValues(op, outcome).Inc()
	relayDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		c.log.Warn().Err(err).Str("operation", op).Str("outcome", outcome).Dur("elapsed", elapsed).Msg("relay failed")
		return
	}
	c.log.Debug().Str("operation", op).Dur("elapsed", elapsed).Msg("relay ok")
}
