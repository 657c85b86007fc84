package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	UpstreamFetches  *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	FetchDuration    *prometheus.HistogramVec
	WebhookEvents    prometheus.Counter
	RepliesSent      prometheus.Counter
	ArrivalsReturned prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		UpstreamFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_fetches_total",
			Help:      "The total number of upstream fetch attempts",
		}, []string{"source"}),
		UpstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "The total number of failed upstream fetches",
		}, []string{"source"}),
		FetchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Time taken to fetch from an upstream source",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		WebhookEvents: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "The total number of webhook events received",
		}),
		RepliesSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_sent_total",
			Help:      "The total number of chat replies sent",
		}),
		ArrivalsReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "arrivals_returned",
			Help:      "Number of arrivals returned per request after windowing",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 8, 10},
		}),
	}
}
