package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "circle_follow_total",
		Help: "Follow graph mutations by action.",
	}, []string{"action"})

	feedSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "circle_feed_size",
		Help:    "Number of posts returned by a single feed assembly.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
