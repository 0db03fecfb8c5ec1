// Package metrics holds the Prometheus collectors exported on the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAccepted   = "accepted"
	OutcomeForbidden  = "forbidden"
	OutcomeDelivered  = "delivered"
	OutcomeFailed     = "failed"
	OutcomeNotStarted = "not_started"
)

var (
	// InboundRequests counts slash-command callbacks by command and outcome.
	InboundRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slack_hooks_inbound_requests_total",
		Help: "Slash-command callbacks received, by command and outcome",
	}, []string{"command", "outcome"})

	// Notifications counts outgoing webhook posts by outcome.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slack_hooks_notifications_total",
		Help: "Outgoing webhook notifications, by outcome",
	}, []string{"outcome"})
)
