package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/enummeta/core/enumcache"
	"github.com/codewandler/enummeta/core/metrics"
)

// cacheMetrics implements enumcache.CacheMetrics using Prometheus.
type cacheMetrics struct {
	// Lookup metrics
	hits           *prometheus.CounterVec
	misses         *prometheus.CounterVec
	reverseLookups *prometheus.CounterVec

	// Population metrics
	populateDuration  *prometheus.HistogramVec
	membersPopulated  *prometheus.CounterVec
	sharedPopulations *prometheus.CounterVec
}

// NewCacheMetrics creates a Prometheus implementation of CacheMetrics and
// registers its collectors with reg.
func NewCacheMetrics(reg prometheus.Registerer) enumcache.CacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enummeta_cache_hits_total",
			Help: "Total number of member lookups served from the cache",
		}, []string{"enum_type"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enummeta_cache_misses_total",
			Help: "Total number of member lookups not found in the cache",
		}, []string{"enum_type"}),

		reverseLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enummeta_cache_reverse_lookups_total",
			Help: "Total number of lookups of a member by metadata value",
		}, []string{"enum_type", "found"}),

		populateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "enummeta_cache_populate_duration_seconds",
			Help:    "Metadata extraction latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"enum_type", "scope"}),

		membersPopulated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enummeta_cache_members_populated_total",
			Help: "Total number of members committed to the cache",
		}, []string{"enum_type", "scope"}),

		sharedPopulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enummeta_cache_shared_populations_total",
			Help: "Total number of populations shared between concurrent callers",
		}, []string{"enum_type", "scope"}),
	}

	reg.MustRegister(
		m.hits,
		m.misses,
		m.reverseLookups,
		m.populateDuration,
		m.membersPopulated,
		m.sharedPopulations,
	)

	return m
}

func (m *cacheMetrics) CacheHit(enumType string) {
	m.hits.WithLabelValues(enumType).Inc()
}

func (m *cacheMetrics) CacheMiss(enumType string) {
	m.misses.WithLabelValues(enumType).Inc()
}

func (m *cacheMetrics) ReverseLookup(enumType string, found bool) {
	m.reverseLookups.WithLabelValues(enumType, strconv.FormatBool(found)).Inc()
}

func (m *cacheMetrics) PopulateDuration(enumType string, scope enumcache.Scope) metrics.Timer {
	return newTimer(m.populateDuration.WithLabelValues(enumType, string(scope)))
}

func (m *cacheMetrics) MembersPopulated(enumType string, scope enumcache.Scope, count int) {
	m.membersPopulated.WithLabelValues(enumType, string(scope)).Add(float64(count))
}

func (m *cacheMetrics) SharedPopulation(enumType string, scope enumcache.Scope) {
	m.sharedPopulations.WithLabelValues(enumType, string(scope)).Inc()
}

var _ enumcache.CacheMetrics = (*cacheMetrics)(nil)
