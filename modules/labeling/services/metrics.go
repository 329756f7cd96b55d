package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "labelspec_lifecycle_actions_total",
		Help: "Completed label spec lifecycle actions by action name.",
	},
	[]string{"action"},
)
