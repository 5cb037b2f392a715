// Package metrics provides Prometheus metrics for the articles API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "articles",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "articles",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ArticlesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "articles",
			Name:      "created_total",
			Help:      "Total number of articles created",
		},
	)

	// TagsCreated counts tag rows inserted; reused tags are not counted.
	TagsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "articles",
			Name:      "tags_created_total",
			Help:      "Total number of new tags inserted",
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "articles",
			Name:      "store_errors_total",
			Help:      "Total number of failed store operations",
		},
		[]string{"operation"},
	)
)

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordArticleCreated records a committed article and the number of tags it added.
func RecordArticleCreated(newTags int) {
	ArticlesCreated.Inc()
	TagsCreated.Add(float64(newTags))
}

func RecordStoreError(operation string) {
	StoreErrors.WithLabelValues(operation).Inc()
}
