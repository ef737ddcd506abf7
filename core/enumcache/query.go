package enumcache

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/codewandler/enummeta/core/reflector"
)

// GetValue returns the single-valued entry of declared type T on member,
// populating on a miss as the caching method dictates. It returns the zero
// T when no such entry exists; absence is not an error.
func GetValue[T any](c *Cache, member any) (T, error) {
	var zero T
	entries, err := c.entries(member)
	if err != nil {
		return zero, err
	}
	dt := reflect.TypeFor[T]()
	for _, e := range entries {
		if !e.single(dt) {
			continue
		}
		if v, ok := e.value.(T); ok {
			return v, nil
		}
	}
	return zero, nil
}

// GetValues returns the multi-valued entry of declared type T on member in
// declaration order, or nil when no such entry exists.
func GetValues[T any](c *Cache, member any) ([]T, error) {
	entries, err := c.entries(member)
	if err != nil {
		return nil, err
	}
	dt := reflect.TypeFor[T]()
	for _, e := range entries {
		if !e.list(dt) {
			continue
		}
		if list, ok := e.value.([]T); ok {
			return slices.Clone(list), nil
		}
	}
	return nil, nil
}

// CacheEnum populates every member of E. It is a no-op if E is already
// type cached.
func CacheEnum[E Enum](c *Cache) error {
	return c.CacheType(reflect.TypeFor[E]())
}

// GetEnumValueByAttributeValue returns the first member of E, in declared
// order, with an entry of declared type T equal to value. For multi-valued
// entries any list element may match. Values are compared with
// reflect.DeepEqual.
//
// E must be type cached: only WholeTypeOnFirstUse populates it here. When
// nothing matches, found is false and the zero E is returned.
func GetEnumValueByAttributeValue[E Enum, T any](c *Cache, value T) (member E, found bool, err error) {
	ti := reflector.TypeInfoFor[E]()
	if !ti.IsEnum {
		return member, false, fmt.Errorf("reverse lookup %v: %w", ti.Type, ErrInvalidType)
	}
	if !c.store.IsTypeCached(ti.Type) && c.method.populatesForScan() {
		if err = c.populateType(ti); err != nil {
			return member, false, err
		}
	}

	members, ok := c.store.Members(ti.Type)
	if !ok {
		c.log.Debug("reverse lookup on type that is not cached", slog.String("type", ti.Name))
		c.metrics.ReverseLookup(ti.Name, false)
		return member, false, nil
	}

	dt := reflect.TypeFor[T]()
	for _, me := range members {
		for _, e := range me.Entries {
			if e.declaredType == dt && matches(e, value) {
				c.metrics.ReverseLookup(ti.Name, true)
				return me.Member.(E), true, nil
			}
		}
	}
	c.metrics.ReverseLookup(ti.Name, false)
	return member, false, nil
}

func matches[T any](e Entry, value T) bool {
	if !e.multi {
		v, ok := e.value.(T)
		return ok && reflect.DeepEqual(v, value)
	}
	list, ok := e.value.([]T)
	if !ok {
		return false
	}
	return slices.ContainsFunc(list, func(v T) bool { return reflect.DeepEqual(v, value) })
}
