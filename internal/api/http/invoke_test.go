package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placename-desk/placename-desk/client"
)

// stubRelay records calls and returns canned results.
type stubRelay struct {
	query   client.SearchQuery
	sysID   string
	calls   int
	payload json.RawMessage
	err     error
}

func (s *stubRelay) SearchPlacenames(_ context.Context, q client.SearchQuery) (json.RawMessage, error) {
	s.calls++
	s.query = q
	return s.payload, s.err
}

func (s *stubRelay) GetPlacename(_ context.Context, sysID string) (json.RawMessage, error) {
	s.calls++
	s.sysID = sysID
	return s.payload, s.err
}

func invoke(t *testing.T, h http.Handler, command, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invoke/"+command, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestInvoke_SearchDecodesQuery(t *testing.T) {
	relay := &stubRelay{payload: json.RawMessage(`{"resp_code":0,"datas":{"total":0}}`)}
	w := invoke(t, NewRouter(relay), CommandSearch, `{"query":{"name":"苏州","year":1820,"type":"county","page":1,"limit":20}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"resp_code":0,"datas":{"total":0}}`, w.Body.String())
	require.NotNil(t, relay.query.Name)
	assert.Equal(t, "苏州", *relay.query.Name)
	assert.Equal(t, uint32(1820), *relay.query.Year)
	assert.Equal(t, "county", *relay.query.Kind)
	assert.Equal(t, uint32(20), *relay.query.Limit)
	assert.Equal(t, uint32(1), *relay.query.Page)
}

func TestInvoke_SearchEmptyBodyIsEmptyQuery(t *testing.T) {
	relay := &stubRelay{payload: json.RawMessage(`{}`)}
	w := invoke(t, NewRouter(relay), CommandSearch, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, client.SearchQuery{}, relay.query)
}

func TestInvoke_SearchRejectsNegativeNumbers(t *testing.T) {
	relay := &stubRelay{}
	w := invoke(t, NewRouter(relay), CommandSearch, `{"query":{"page":-1}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, relay.calls)
}

func TestInvoke_Detail(t *testing.T) {
	relay := &stubRelay{payload: json.RawMessage(`{"sysId":"hvd_1"}`)}
	w := invoke(t, NewRouter(relay), CommandDetail, `{"sysId":"hvd_1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hvd_1", relay.sysID)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestInvoke_RelayFailureIsBadGateway(t *testing.T) {
	relay := &stubRelay{err: errors.New("network request failed: connection refused")}
	w := invoke(t, NewRouter(relay), CommandSearch, `{"query":{}}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"network request failed: connection refused","code":502}`, w.Body.String())
}

func TestInvoke_UnknownCommand(t *testing.T) {
	w := invoke(t, NewRouter(&stubRelay{}), "delete_everything", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoke_MalformedArgs(t *testing.T) {
	w := invoke(t, NewRouter(&stubRelay{}), CommandDetail, `{"sysId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoke_KeepsCallerRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/invoke/"+CommandDetail, strings.NewReader(`{"sysId":"x"}`))
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	NewRouter(&stubRelay{payload: json.RawMessage(`{}`)}).ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

// The bridge against a real client and a stub gazetteer.
func TestInvoke_EndToEnd(t *testing.T) {
	gazetteer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`"not found"`))
		case strings.HasSuffix(r.URL.EscapedPath(), "/json/A%20B"):
			_, _ = w.Write([]byte(`{"sysId":"A B"}`))
		default:
			_, _ = w.Write([]byte("garbage"))
		}
	}))
	defer gazetteer.Close()

	c, err := client.New(client.WithBaseURL(gazetteer.URL))
	require.NoError(t, err)
	router := NewRouter(c)

	t.Run("detail ok", func(t *testing.T) {
		w := invoke(t, router, CommandDetail, `{"sysId":"  A B "}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sysId":"A B"}`, w.Body.String())
	})

	t.Run("blank id", func(t *testing.T) {
		w := invoke(t, router, CommandDetail, `{"sysId":"   "}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"sysId must not be empty","code":400}`, w.Body.String())
	})

	t.Run("upstream 404", func(t *testing.T) {
		w := invoke(t, router, CommandSearch, `{"query":{"name":"x"}}`)
		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "404")
		assert.Contains(t, resp.Error, "not found")
	})

	t.Run("parse failure", func(t *testing.T) {
		w := invoke(t, router, CommandDetail, `{"sysId":"other"}`)
		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "failed to parse response")
	})
}

func TestHealthAndMetrics(t *testing.T) {
	router := NewRouter(&stubRelay{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
