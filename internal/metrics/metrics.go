// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payroll"

// CalculationsTotal counts processed calculations by definition and outcome.
var CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "engine",
	Name:      "calculations_total",
	Help:      "Calculations processed, by definition name and outcome.",
}, []string{"definition", "outcome"})

// RequestDuration tracks end-to-end batch processing time.
var RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "engine",
	Name:      "request_duration_seconds",
	Help:      "Time spent processing one calculation request.",
	Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
})

// EstimatorIterations records forward evaluations per gross estimate.
var EstimatorIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "estimator",
	Name:      "iterations",
	Help:      "Net salary evaluations used per gross estimate.",
	Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 100},
}, []string{"method"})

// EstimatorNotConverged counts estimates returned without reaching tolerance.
var EstimatorNotConverged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "estimator",
	Name:      "not_converged_total",
	Help:      "Gross estimates that exhausted their iteration budget.",
}, []string{"method"})

// SchemeFetches counts remote scheme lookups by result (hit, fetched, fallback).
var SchemeFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "schemes",
	Name:      "lookups_total",
	Help:      "Scheme lookups, by result.",
}, []string{"result"})
