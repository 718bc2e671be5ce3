// Package metrics defines and registers the custom Prometheus metrics for
// the portal backend. It is the single source of truth for metric names,
// labels, and help strings; registration happens via promauto at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrive"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid" (bad or unknown credentials, merged on
//     purpose so the metric cannot enumerate accounts either), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts by outcome.
// Label:
//   - result: "created", "conflict", "invalid", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"result"},
)
