// Package metrics exposes Prometheus counters for the approval engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsCreated counts submitted requests by request_type.
	RequestsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oaflow",
		Name:      "requests_created_total",
		Help:      "Number of approval requests created.",
	}, []string{"request_type"})

	// RequestsClosed counts requests reaching a terminal status.
	RequestsClosed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oaflow",
		Name:      "requests_closed_total",
		Help:      "Number of approval requests reaching a terminal status.",
	}, []string{"status"})

	// TasksDecided counts task decisions by decision kind.
	TasksDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oaflow",
		Name:      "tasks_decided_total",
		Help:      "Number of tasks decided.",
	}, []string{"decision"})

	// NotificationsFanned counts notification rows written on fan-out.
	NotificationsFanned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "oaflow",
		Name:      "notifications_fanned_total",
		Help:      "Number of notifications written to user inboxes.",
	})

	// AttachmentBytes counts attachment bytes accepted.
	AttachmentBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "oaflow",
		Name:      "attachment_bytes_total",
		Help:      "Total attachment bytes written to storage.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
