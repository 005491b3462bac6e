package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// sortRuns counts Engine.Sort calls.
	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "arrays_sort_runs_total",
		Help: "The total number of sorts run",
	}, []string{"subsystem", "algorithm"})

	// sortFailures counts Engine.Sort calls that returned an error.
	sortFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "arrays_sort_failures_total",
		Help: "The total number of sorts that failed",
	}, []string{"subsystem", "algorithm"})

	// sortDuration measures how long each sort took.
	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "arrays_sort_duration_seconds",
		Help: "The time spent sorting one array",
		Buckets: []float64{
			0.00001, // 10us
			0.0001,  // 100us
			0.001,   // 1ms
			0.01,    // 10ms
			0.1,     // 100ms
			1,       // 1s
			10,      // 10s
		},
	}, []string{"subsystem", "algorithm"})

	// sortElements records the size of each sorted array.
	sortElements = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "arrays_sort_elements",
		Help:    "The number of elements in each sorted array",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), //nolint:mnd
	}, []string{"subsystem", "algorithm"})
)
