package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records browse traffic per category.
type CatalogMetrics struct {
	duration  *prometheus.HistogramVec
	requests  *prometheus.CounterVec
	cacheHit  *prometheus.CounterVec
	cacheMiss *prometheus.CounterVec
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_filter_duration_seconds",
		Help:    "Duration of catalog filter evaluations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"category"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_requests_total",
		Help: "Catalog browse requests.",
	}, []string{"category"})
	cacheHit := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_snapshot_cache_hits_total",
		Help: "Catalog snapshot cache hits.",
	}, []string{"category"})
	cacheMiss := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_snapshot_cache_misses_total",
		Help: "Catalog snapshot cache misses.",
	}, []string{"category"})
	reg.MustRegister(duration, requests, cacheHit, cacheMiss)
	return &CatalogMetrics{
		duration:  duration,
		requests:  requests,
		cacheHit:  cacheHit,
		cacheMiss: cacheMiss,
	}
}

// ObserveDuration records the filter evaluation time for the category.
func (c *CatalogMetrics) ObserveDuration(category string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(category)).Observe(duration.Seconds())
}

// IncRequest increments the request counter for the category.
func (c *CatalogMetrics) IncRequest(category string) {
	if c == nil || c.requests == nil {
		return
	}
	c.requests.WithLabelValues(normalizeLabel(category)).Inc()
}

// IncCacheHit increments the snapshot cache hit counter for the category.
func (c *CatalogMetrics) IncCacheHit(category string) {
	if c == nil || c.cacheHit == nil {
		return
	}
	c.cacheHit.WithLabelValues(normalizeLabel(category)).Inc()
}

// IncCacheMiss increments the snapshot cache miss counter for the category.
func (c *CatalogMetrics) IncCacheMiss(category string) {
	if c == nil || c.cacheMiss == nil {
		return
	}
	c.cacheMiss.WithLabelValues(normalizeLabel(category)).Inc()
}

func normalizeLabel(category string) string {
	if category == "" {
		return "all"
	}
	return category
}
