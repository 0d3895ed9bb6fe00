package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	LoanOffersComputed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loan_offers_per_request",
			Help:    "Number of loan offers returned per loan-options request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
	BankCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_cache_hits_total",
			Help: "Total number of banking-partner cache hits",
		},
	)
	BankCacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_cache_misses_total",
			Help: "Total number of banking-partner cache misses",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(LoanOffersComputed)
		prometheus.MustRegister(BankCacheHitsTotal)
		prometheus.MustRegister(BankCacheMissesTotal)
	})
}
