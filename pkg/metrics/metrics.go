package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds) by method, route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Roadmap generations by provenance (model or fallback).
	RoadmapGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadmap_generations_total",
			Help: "Total number of roadmaps generated, by source",
		},
		[]string{"source"},
	)

	// LLM completion latency (milliseconds) by outcome.
	LLMRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_latency_ms",
			Help:    "LLM completion call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"model", "status"},
	)

	// Currently connected websocket sessions.
	WebsocketSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_active_sessions",
			Help: "Number of active websocket sessions",
		},
	)

	// Chat messages accepted, by transport (ws or rest).
	ChatMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_sent_total",
			Help: "Total number of chat messages accepted",
		},
		[]string{"transport"},
	)

	// Milestone reminders produced by the background sweep.
	MilestoneReminders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "milestone_reminders_total",
			Help: "Total number of milestone reminders produced",
		},
	)
)

// RecordHTTPRequest observes one served HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordLLMRequest observes one LLM completion attempt.
func RecordLLMRequest(model, status string, duration time.Duration) {
	LLMRequestLatency.WithLabelValues(model, status).Observe(float64(duration.Milliseconds()))
}

// IncRoadmapGeneration counts one finished generation by provenance.
func IncRoadmapGeneration(source string) {
	RoadmapGenerations.WithLabelValues(source).Inc()
}
