// Package metrics provides backend-neutral metric interfaces so the cache
// can be instrumented (Prometheus, StatsD, ...) without importing a backend.
package metrics

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time:
//
//	defer m.PopulateDuration("pkg.Color", "type").ObserveDuration()
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}
