// Package metrics defines the custom Prometheus metrics of the calorie
// tracker. HTTP request metrics come from echoprometheus; the collectors here
// describe the food log itself.
//
// All collectors are registered with the default registry through promauto,
// so they are exposed on /metrics as soon as the package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calora"

// ── Entry metrics ────────────────────────────────────────────────────────────

// EntriesLoggedTotal counts stored food entries.
// Label:
//   - meal: breakfast, lunch, dinner or snack
var EntriesLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_logged_total",
		Help:      "Total number of food entries logged, by meal.",
	},
	[]string{"meal"},
)

// EntriesDeletedTotal counts removed food entries.
var EntriesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_deleted_total",
		Help:      "Total number of food entries deleted.",
	},
)

// LoggedCalories observes the estimated energy of each stored entry.
var LoggedCalories = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "entry_calories",
		Help:      "Estimated calories per logged food entry.",
		Buckets:   []float64{50, 100, 200, 350, 500, 750, 1000},
	},
)

// EstimatorConfidence observes the confidence of every estimate, stored or
// analysed only.
// Label:
//   - rule: the keyword rule that matched, or "default"
var EstimatorConfidence = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimator_confidence",
		Help:      "Confidence reported by the nutrient estimator.",
		Buckets:   []float64{0.5, 0.7, 0.8, 0.85, 0.9, 0.95, 1},
	},
	[]string{"rule"},
)

// ── User metrics ─────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// UsersDeactivatedTotal counts soft deletes.
var UsersDeactivatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deactivated_total",
		Help:      "Total number of deactivated users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
