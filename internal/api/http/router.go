package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/placename-desk/placename-desk/internal/api/recovery"
)

// NewRouter wires the invoke bridge: the two relay commands, health and
// metrics, behind request-id, access-log and panic-recovery middleware.
func NewRouter(relay Relay) *mux.Router {
	r := mux.NewRouter()
	r.Use(recovery.Middleware, requestID, accessLog)

	inv := NewInvokeHandler(relay)
	r.HandleFunc("/invoke/{command}", inv.Invoke).Methods(http.MethodPost)

	r.HandleFunc("/healthz", NewHealthHandler().CheckHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}
