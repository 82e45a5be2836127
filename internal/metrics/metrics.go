package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Quote metrics
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swaplaunch_quote_requests_total",
			Help: "Total number of quote requests",
		},
		[]string{"family", "status"},
	)

	QuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swaplaunch_quote_duration_seconds",
			Help:    "Quote request duration in seconds, upstream call included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"family"},
	)

	NormalizationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swaplaunch_normalization_failures_total",
			Help: "Total number of upstream quotes rejected during normalization",
		},
		[]string{"family"},
	)

	PriceImpact = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "swaplaunch_price_impact_percent",
		Help:    "Price impact of normalized quotes in percent",
		Buckets: []float64{0, 0.1, 0.5, 1, 3, 5, 10, 50, 100},
	})

	QuoteCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_quote_cache_hits_total",
		Help: "Total number of quote cache hits",
	})

	QuoteCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_quote_cache_misses_total",
		Help: "Total number of quote cache misses",
	})

	QuoteCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swaplaunch_quote_cache_size",
		Help: "Current number of entries in quote cache",
	})

	// Token resolution metrics
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swaplaunch_search_requests_total",
			Help: "Total number of token/pair search requests",
		},
		[]string{"kind", "status"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swaplaunch_search_duration_seconds",
			Help:    "Token/pair search duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	SearchResultsDeduped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_search_results_deduped_total",
		Help: "Total number of duplicate search results dropped during merge",
	})

	// Scheduler metrics
	StaleResponsesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_stale_responses_dropped_total",
		Help: "Total number of late responses suppressed by the generation guard",
	})

	DebouncedCallsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_debounced_calls_cancelled_total",
		Help: "Total number of pending debounced triggers cancelled by newer input",
	})

	// History metrics
	SwapsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swaplaunch_swaps_logged_total",
		Help: "Total number of completed swaps written to history",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swaplaunch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swaplaunch_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
