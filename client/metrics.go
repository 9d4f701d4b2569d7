package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeUnknown = "unknown"
)

var (
	relayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placename_client",
			Name:      "relay_requests_total",
			Help:      "Relay calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	relayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placename_client",
			Name:      "relay_duration_seconds",
			Help:      "Wall time of relay calls, including failed ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
