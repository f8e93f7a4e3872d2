package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_changes_published_total",
		Help: "Change events published to the feed, by table and op.",
	}, []string{"table", "op"})

	deliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_changes_delivered_total",
		Help: "Change events delivered to subscribers, by table.",
	}, []string{"table"})

	droppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_changes_dropped_total",
		Help: "Change events dropped because a subscriber was not draining.",
	}, []string{"table"})
)
