package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffops_orders_accepted_total",
		Help: "Total number of orders successfully claimed into an office queue.",
	})

	AssignmentsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffops_assignments_accepted_total",
		Help: "Total number of temporary assignments successfully accepted.",
	})

	StatusUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffops_status_updates_total",
		Help: "Total number of order status transitions pushed to the backend.",
	})

	RefreshFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffops_refresh_failures_total",
		Help: "Total number of failed listing refreshes, by resource.",
	},
		[]string{"resource"},
	)

	MutationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffops_mutation_errors_total",
		Help: "Total number of errors encountered during staff mutations.",
	},
		[]string{"operation"},
	)

	StoreOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staffops_store_orders",
		Help: "Current number of orders resident in the state store.",
	})
)
