package enumcache

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/enummeta/core/metrics"
)

type testEnum int

const (
	Undefined testEnum = iota
	BooleanValue
	DoubleValue
	IntegerValue
	KeyValuePairValues
	LongValue
	StringValue
	Combined
)

// undeclared is a valid testEnum value missing from the registry.
const undeclared testEnum = 99

type Color uint8

const (
	Black Color = iota
	Red
	Green
)

type Tags int

const (
	Plain Tags = iota
	Combo
)

type hexCode string

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, Declare(r,
		Member(Undefined),
		Member(BooleanValue, Bool(true)),
		Member(DoubleValue, Double(5.5)),
		Member(IntegerValue, Integer(10)),
		Member(KeyValuePairValues,
			KeyValue("firstKey", "firstValue"),
			KeyValue("secondKey", "secondValue"),
		),
		Member(LongValue, Long(100_000_000_000_000_000)),
		Member(StringValue, String("Value of the string")),
		Member(Combined,
			String("combined"),
			Integer(7),
			KeyValue("k", 1),
			Single(hexCode("#abc")),
		),
	))
	require.NoError(t, Declare(r,
		Member(Black, String("000000")),
		Member(Red, String("FF0000")),
		Member(Green, String("00FF00")),
	))
	require.NoError(t, Declare(r,
		Member(Plain),
		Member(Combo, KeyValue("a", "1"), KeyValue("b", "2")),
	))
	return r
}

func newTestCache(t *testing.T, src Source, method CachingMethod) *Cache {
	t.Helper()
	c, err := New(src, Options{Method: method})
	require.NoError(t, err)
	return c
}

// countingSource counts Annotations calls per member.
type countingSource struct {
	Source
	mu    sync.Mutex
	calls map[any]int
	total atomic.Int32
}

func newCountingSource(src Source) *countingSource {
	return &countingSource{Source: src, calls: make(map[any]int)}
}

func (s *countingSource) Annotations(t reflect.Type, member any) ([]Annotation, bool) {
	s.total.Add(1)
	s.mu.Lock()
	s.calls[member]++
	s.mu.Unlock()
	return s.Source.Annotations(t, member)
}

func (s *countingSource) Calls(member any) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[member]
}

// recordingMetrics records CacheMetrics calls.
type recordingMetrics struct {
	mu        sync.Mutex
	hits      int
	misses    int
	populated map[Scope]int
	shared    int
	reverse   map[bool]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{populated: map[Scope]int{}, reverse: map[bool]int{}}
}

func (m *recordingMetrics) CacheHit(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *recordingMetrics) CacheMiss(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func (m *recordingMetrics) ReverseLookup(_ string, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reverse[found]++
}

func (m *recordingMetrics) PopulateDuration(string, Scope) metrics.Timer { return metrics.NopTimer() }

func (m *recordingMetrics) MembersPopulated(_ string, scope Scope, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.populated[scope] += count
}

func (m *recordingMetrics) SharedPopulation(string, Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shared++
}

var _ CacheMetrics = (*recordingMetrics)(nil)
