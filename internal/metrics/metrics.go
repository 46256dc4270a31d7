package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boardnotify_events_received_total",
		Help: "Total webhook events accepted for forwarding, labelled by action kind.",
	}, []string{"action"})

	EventsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boardnotify_events_rejected_total",
		Help: "Total inbound requests rejected before forwarding, labelled by reason.",
	}, []string{"reason"})

	ForwardsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boardnotify_forwards_total",
		Help: "Total outbound forwards to the chat endpoint, labelled by outcome.",
	}, []string{"outcome"})

	ForwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boardnotify_forward_duration_ms",
		Help:    "Outbound forward latency in milliseconds.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})
)
