package enumcache

import "github.com/codewandler/enummeta/core/metrics"

// CacheMetrics instruments a [Cache]. Labels are fully qualified enum type
// names; implementations should be thread-safe.
type CacheMetrics interface {
	// Lookups
	CacheHit(enumType string)
	CacheMiss(enumType string)
	ReverseLookup(enumType string, found bool)

	// Population
	PopulateDuration(enumType string, scope Scope) metrics.Timer
	MembersPopulated(enumType string, scope Scope, count int)
	SharedPopulation(enumType string, scope Scope)
}

type nopCacheMetrics struct{}

func (nopCacheMetrics) CacheHit(string)            {}
func (nopCacheMetrics) CacheMiss(string)           {}
func (nopCacheMetrics) ReverseLookup(string, bool) {}

func (nopCacheMetrics) PopulateDuration(string, Scope) metrics.Timer { return metrics.NopTimer() }
func (nopCacheMetrics) MembersPopulated(string, Scope, int)          {}
func (nopCacheMetrics) SharedPopulation(string, Scope)               {}

// NopCacheMetrics returns a no-op CacheMetrics implementation.
func NopCacheMetrics() CacheMetrics { return nopCacheMetrics{} }
