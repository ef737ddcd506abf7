package enumcache

import (
	"reflect"
	"sync"
)

// MemberEntries pairs a member with its committed entries.
type MemberEntries struct {
	Member  any
	Entries []Entry
}

// StoreStats is a point-in-time summary of a [Store].
type StoreStats struct {
	Types      int // types with at least one populated member
	WholeTypes int // types populated through PutWholeType
	Members    int // populated members across all types
}

type typeSlot struct {
	members map[any][]Entry
	order   []any // declared member order; set by PutWholeType
	whole   bool
}

// Store maps enum type -> member -> entries. It only grows: a committed
// member is never replaced, and no invalidation exists. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	types map[reflect.Type]*typeSlot
}

func NewStore() *Store {
	return &Store{types: make(map[reflect.Type]*typeSlot)}
}

// TryGet returns the committed entries of member without populating.
func (s *Store) TryGet(t reflect.Type, member any) ([]Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.types[t]
	if !ok {
		return nil, false
	}
	entries, ok := slot.members[member]
	return entries, ok
}

// IsTypeCached reports whether t was populated through PutWholeType.
// Member-level puts do not count.
func (s *Store) IsTypeCached(t reflect.Type) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.types[t]
	return ok && slot.whole
}

func (s *Store) IsMemberCached(t reflect.Type, member any) bool {
	_, ok := s.TryGet(t, member)
	return ok
}

// Put commits entries for member unless the member is already committed,
// in which case the existing entries win. It returns the committed entries
// and whether this call added them.
func (s *Store) Put(t reflect.Type, member any, entries []Entry) ([]Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.types[t]
	if !ok {
		slot = &typeSlot{members: make(map[any][]Entry)}
		s.types[t] = slot
	}
	if existing, ok := slot.members[member]; ok {
		return existing, false
	}
	slot.members[member] = entries
	return entries, true
}

// PutWholeType commits every member of t in one step and marks t as type
// cached. Members committed earlier keep their entries. It returns false
// if t was already type cached.
func (s *Store) PutWholeType(t reflect.Type, members []MemberEntries) bool {
	next := &typeSlot{
		members: make(map[any][]Entry, len(members)),
		order:   make([]any, 0, len(members)),
		whole:   true,
	}
	for _, m := range members {
		if _, dup := next.members[m.Member]; dup {
			continue
		}
		next.members[m.Member] = m.Entries
		next.order = append(next.order, m.Member)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.types[t]
	if ok && prev.whole {
		return false
	}
	if ok {
		for member, entries := range prev.members {
			next.members[member] = entries
		}
	}
	s.types[t] = next
	return true
}

// Members returns the members of a type-cached t in declared order.
func (s *Store) Members(t reflect.Type) ([]MemberEntries, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.types[t]
	if !ok || !slot.whole {
		return nil, false
	}
	out := make([]MemberEntries, len(slot.order))
	for i, m := range slot.order {
		out[i] = MemberEntries{Member: m, Entries: slot.members[m]}
	}
	return out, true
}

func (s *Store) Stats() StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st StoreStats
	for _, slot := range s.types {
		st.Types++
		if slot.whole {
			st.WholeTypes++
		}
		st.Members += len(slot.members)
	}
	return st
}
