package api

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// countingRT counts round trips and then delegates to base.
type countingRT struct {
	base  http.RoundTripper
	calls atomic.Int32
}

func (c *countingRT) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return c.base.RoundTrip(r)
}

// brokenBody fails every Read.
type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, fmt.Errorf("connection reset") }
func (brokenBody) Close() error             { return nil }

// brokenBodyRT answers with status and a body that cannot be read.
type brokenBodyRT struct{ status int }

func (b brokenBodyRT) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: b.status,
		Status:     http.StatusText(b.status),
		Header:     http.Header{},
		Body:       brokenBody{},
		Request:    r,
	}, nil
}

func newResty(rt http.RoundTripper) *resty.Client {
	rc := resty.New()
	if rt != nil {
		rc.SetTransport(rt)
	}
	return rc
}
