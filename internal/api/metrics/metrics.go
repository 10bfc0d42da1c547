// Package metrics defines and registers all custom Prometheus metrics for
// the Arete API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arete"

// --- Auth metrics ---

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// --- Challenge metrics ---

// ChallengesGeneratedTotal counts weekly challenges written to the store.
// Label:
//   - virtue: the virtue identifier the challenge was generated for
var ChallengesGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "challenges_generated_total",
		Help:      "Total number of weekly challenges generated, by virtue.",
	},
	[]string{"virtue"},
)

// --- Moment metrics ---

// MomentsLoggedTotal counts reflective moments logged.
// Label:
//   - virtue: the virtue identifier the moment was tagged with
var MomentsLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moments_logged_total",
		Help:      "Total number of reflective moments logged, by virtue.",
	},
	[]string{"virtue"},
)
