package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booky",
			Name:      "reservations_created_total",
			Help:      "Count of reservations successfully created.",
		},
	)

	reservationsApproved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booky",
			Name:      "reservations_approved_total",
			Help:      "Count of reservations approved by staff.",
		},
	)

	allocationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booky",
			Name:      "allocation_conflicts_total",
			Help:      "Count of reservation requests rejected because no resource was free.",
		},
	)

	notificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booky",
			Name:      "notification_failures_total",
			Help:      "Count of outbound notification attempts that failed, by event.",
		},
		[]string{"event"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			reservationsCreated,
			reservationsApproved,
			allocationConflicts,
			notificationFailures,
		)
	})
}

func IncReservationCreated() {
	reservationsCreated.Inc()
}

func IncReservationApproved() {
	reservationsApproved.Inc()
}

func IncAllocationConflict() {
	allocationConflicts.Inc()
}

func IncNotificationFailure(event string) {
	notificationFailures.WithLabelValues(event).Inc()
}
