package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_chat_requests_total",
			Help: "Chat turns handled, by resolved language",
		},
		[]string{"language"},
	)

	ChatFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "faqbot_chat_fallbacks_total",
			Help: "Chat turns escalated to a human",
		},
	)

	HandoffRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "faqbot_handoff_requests_total",
			Help: "Human-assistance requests recorded",
		},
	)

	LogWritesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_log_writes_dropped_total",
			Help: "Log lines discarded after a write failure, by stream prefix",
		},
		[]string{"prefix"},
	)
)
