// Package metrics exposes Prometheus collectors for solver activity. The
// solvers themselves stay pure; the service layer records observations around
// them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Solves counts solver invocations by method and outcome. Outcomes use
	// the failure taxonomy: ok, not_a_bracket, max_iterations,
	// derivative_too_small, non_finite, invalid_request.
	Solves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finnr",
		Subsystem: "solver",
		Name:      "solves_total",
		Help:      "Root solves by method and outcome.",
	}, []string{"method", "outcome"})

	// Iterations observes how many iterations a successful solve needed.
	Iterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finnr",
		Subsystem: "solver",
		Name:      "iterations",
		Help:      "Iterations used by successful solves.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"method"})

	// Evaluations observes how many function evaluations a solve consumed,
	// successful or not. Evaluation count is the real cost of a solve when
	// the caller's function is expensive.
	Evaluations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finnr",
		Subsystem: "solver",
		Name:      "evaluations",
		Help:      "Function evaluations consumed per solve.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"method"})

	// BracketScans counts bracket-scan requests and the brackets they found.
	BracketScans = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "finnr",
		Subsystem: "bracket",
		Name:      "scans_total",
		Help:      "Bracket scans served.",
	})

	// BracketsFound counts brackets emitted across all scans.
	BracketsFound = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "finnr",
		Subsystem: "bracket",
		Name:      "found_total",
		Help:      "Brackets found across all scans.",
	})
)
