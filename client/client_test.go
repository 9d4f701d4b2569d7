package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newStubClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base URL = %s", c.BaseURL())
	}
	if c.timeout != 0 {
		t.Fatalf("default client must not set a timeout")
	}
}

func TestNew_OptionErrors(t *testing.T) {
	if _, err := New(WithBaseURL("  ")); err == nil {
		t.Fatal("expected error for blank base URL")
	}
	if _, err := New(WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if _, err := New(WithTransport(nil)); err == nil {
		t.Fatal("expected error for nil transport")
	}
}

func TestWithBaseURL_TrimsSlash(t *testing.T) {
	c, err := New(WithBaseURL("http://example.com/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://example.com" {
		t.Fatalf("base URL = %s", c.BaseURL())
	}
}

func TestSearchPlacenames_PassesBodyThrough(t *testing.T) {
	const body = `{"total":1,"items":[{"id":"A1"}]}`
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
	got, err := c.SearchPlacenames(context.Background(), SearchQuery{Limit: Uint32(10)})
	if err != nil {
		t.Fatalf("SearchPlacenames: %v", err)
	}
	if string(got) != body {
		t.Fatalf("got %s", got)
	}
}

func TestGetPlacename_EmptyID(t *testing.T) {
	var calls int
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })
	_, err := c.GetPlacename(context.Background(), "  ")
	if !errors.Is(err, ErrEmptySysID) || !IsValidation(err) {
		t.Fatalf("unexpected error %v", err)
	}
	if calls != 0 {
		t.Fatalf("network called %d times", calls)
	}
}

func TestErrorKindHelpers(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`"not found"`))
	})
	_, err := c.SearchPlacenames(context.Background(), SearchQuery{})
	if !IsStatus(err) || IsTransport(err) || IsDecode(err) || IsValidation(err) {
		t.Fatalf("helpers disagree for %v", err)
	}
	var re *RelayError
	if !errors.As(err, &re) || re.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatal("plain errors have no kind")
	}
}

func TestTransportFailure(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New(WithBaseURL("http://gazetteer.test"), WithTransport(rt))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.GetPlacename(context.Background(), "x")
	if !IsTransport(err) || !strings.HasPrefix(err.Error(), "network request failed") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCookiesDoNotCarryOverBetweenCalls(t *testing.T) {
	var (
		mu      sync.Mutex
		cookies []string
	)
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		cookies = append(cookies, r.Header.Get("Cookie"))
		mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc", Path: "/"})
		_, _ = w.Write([]byte(`{}`))
	})
	for i := 0; i < 2; i++ {
		if _, err := c.GetPlacename(context.Background(), "a/b c"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if len(cookies) != 2 || cookies[0] != "" || cookies[1] != "" {
		t.Fatalf("cookies per call = %q, want none", cookies)
	}
}

func TestRequestsCarryNeutralUserAgent(t *testing.T) {
	var got string
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	})
	if _, err := c.SearchPlacenames(context.Background(), SearchQuery{}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if got != UserAgent {
		t.Fatalf("User-Agent = %q, want %q", got, UserAgent)
	}
}

func TestConcurrentCallsShareClient(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetPlacename(context.Background(), "x"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent call failed: %v", err)
	}
}

func TestMetricsCountOutcomes(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	before := testutil.ToFloat64(relayRequestsTotal.WithLabelValues("get_placename", "decode"))
	_, _ = c.GetPlacename(context.Background(), "x")
	after := testutil.ToFloat64(relayRequestsTotal.WithLabelValues("get_placename", "decode"))
	if after-before != 1 {
		t.Fatalf("decode counter moved by %v", after-before)
	}
}

func TestDebugTransport_InstalledViaEnv(t *testing.T) {
	t.Setenv("PLACENAME_DEBUG", "true")
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New(WithBaseURL("http://gazetteer.test"), WithTransport(rt))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.debug {
		t.Fatal("expected debug transport when PLACENAME_DEBUG=true")
	}
	// Empty 200 body is not JSON, but the request must still reach the base transport.
	_, err = c.GetPlacename(context.Background(), "x")
	if !called {
		t.Fatal("base transport not invoked")
	}
	if !IsDecode(err) {
		t.Fatalf("expected decode error for empty body, got %v", err)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := dt.RoundTrip(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
