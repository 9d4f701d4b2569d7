// Package recovery turns a handler panic into a JSON 500 so one bad invoke
// cannot take the bridge down.
package recovery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/internal/api/respond"
)

// RequestIDHeader is read back from the response headers, where the
// request-id middleware has already stored it.
const RequestIDHeader = "X-Request-ID"

// Middleware recovers panics from next, logs them with the request id and
// answers 500 {"error": "internal error: <panic>", "code": 500}.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("request_id", w.Header().Get(RequestIDHeader)).
				Bytes("stack", debug.Stack()).
				Msg("invoke handler panicked")

			respond.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}
