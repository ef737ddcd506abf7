// Package ds provides small generic data structures shared by the core packages.
package ds

import (
	"fmt"
)

// Set is an insertion-ordered set with O(1) membership and position lookup.
// Elements are never removed, which keeps positions stable; this matches
// declaration tables that only grow while being built and are then read.
//
// A Set is not safe for concurrent mutation. Callers that publish a Set to
// readers must stop mutating it first.
type Set[T comparable] struct {
	index map[T]int
	order []T
}

// NewSet creates a new set with the given items. Duplicates are dropped,
// keeping the first occurrence.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int, len(items)), order: make([]T, 0, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *Set[T]) String() string {
	return fmt.Sprintf("%v", s.order)
}

// Add appends v to the set and reports whether it was added.
// It is a no-op returning false if v is already present.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains returns true if v is present in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the insertion position of v, or -1 if absent.
func (s *Set[T]) Index(v T) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	return -1
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return len(s.order) }

// IsEmpty returns true if the set contains no elements.
func (s *Set[T]) IsEmpty() bool { return len(s.order) == 0 }

// ForEach iterates over all elements in insertion order.
func (s *Set[T]) ForEach(fn func(T)) {
	for _, v := range s.order {
		fn(v)
	}
}

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
