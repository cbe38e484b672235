package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	swipeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leggo",
		Subsystem: "discovery",
		Name:      "swipes_total",
		Help:      "Swipe events processed, by direction.",
	}, []string{"direction"})
	authCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leggo",
		Subsystem: "auth",
		Name:      "attempts_total",
		Help:      "Authentication attempts, by outcome.",
	}, []string{"outcome"})
	activityCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "leggo",
		Subsystem: "catalog",
		Name:      "activities_created_total",
		Help:      "Activities created through the engine.",
	})
	discoverableGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "leggo",
		Subsystem: "discovery",
		Name:      "remaining_cards",
		Help:      "Cards left in the current discoverable deck.",
	})
)

func init() {
	prometheus.MustRegister(swipeCounter, authCounter, activityCreatedCounter, discoverableGauge)
}

// RecordSwipe counts one swipe event.
func RecordSwipe(direction string) {
	if direction == "" {
		return
	}
	swipeCounter.WithLabelValues(direction).Inc()
}

// RecordAuthAttempt counts one authentication attempt by outcome
// (success, invalid_credentials, error).
func RecordAuthAttempt(outcome string) {
	if outcome == "" {
		return
	}
	authCounter.WithLabelValues(outcome).Inc()
}

// RecordActivityCreated counts one successful create.
func RecordActivityCreated() {
	activityCreatedCounter.Inc()
}

// SetDiscoverableRemaining updates the remaining-cards gauge.
func SetDiscoverableRemaining(n int) {
	if n < 0 {
		return
	}
	discoverableGauge.Set(float64(n))
}
