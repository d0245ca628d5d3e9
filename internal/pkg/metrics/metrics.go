package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LocationsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emsp",
		Name:      "locations_registered_total",
		Help:      "Locations inserted by the registration flow.",
	})
	EVSEsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emsp",
		Name:      "evses_registered_total",
		Help:      "EVSEs inserted by the registration flow.",
	})
	BatchesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emsp",
		Name:      "registration_batches_committed_total",
		Help:      "Registration batches committed.",
	})
	BatchesRolledBack = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emsp",
		Name:      "registration_batches_rolled_back_total",
		Help:      "Registration batches rolled back after per-entry failures.",
	})
	GeocodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emsp",
		Name:      "geocode_failures_total",
		Help:      "Geocoding calls that returned no usable address.",
	})
)
