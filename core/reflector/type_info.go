// Package reflector provides cached type metadata for enumerated types.
// It classifies a reflect.Type once and serves repeated lookups from memory.
package reflector

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// maxCacheSize is the maximum number of entries in the type cache.
// Enum types in a program are few; when exceeded, the cache is cleared.
const maxCacheSize = 1024

var (
	muCache sync.RWMutex
	cache   = make(map[reflect.Type]TypeInfo)
	nextID  atomic.Uint64
)

// TypeInfo holds metadata about a reflected type.
type TypeInfo struct {
	ID     uint64       // Process-unique, never reused; zero for nil types
	Name   string       // Fully qualified name: "pkg/path.TypeName"
	Type   reflect.Type // The underlying reflect.Type
	IsEnum bool         // Declared named type with an integer kind
}

// TypeInfoOf returns TypeInfo for the dynamic type of x.
// A pointer is unwrapped to its element type.
func TypeInfoOf(x any) TypeInfo {
	return TypeInfoForType(reflect.TypeOf(x))
}

// TypeInfoFor returns TypeInfo for type parameter T.
func TypeInfoFor[T any]() TypeInfo {
	return TypeInfoForType(reflect.TypeFor[T]())
}

// TypeInfoForType returns TypeInfo for the given reflect.Type.
// For pointer types, returns info about the element type.
// Results are cached; thread-safe for concurrent use.
func TypeInfoForType(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	muCache.RLock()
	ti, ok := cache[t]
	muCache.RUnlock()
	if ok {
		return ti
	}

	muCache.Lock()
	defer muCache.Unlock()
	if existing, ok := cache[t]; ok {
		return existing
	}
	if len(cache) >= maxCacheSize {
		cache = make(map[reflect.Type]TypeInfo)
	}
	ti = TypeInfo{
		ID:     nextID.Add(1),
		Name:   t.PkgPath() + "." + t.Name(),
		Type:   t,
		IsEnum: IsEnumType(t),
	}
	cache[t] = ti
	return ti
}

// IsEnumType reports whether t can back an enumeration: a declared,
// named type whose underlying kind is a signed or unsigned integer.
// Predeclared types such as int are rejected.
func IsEnumType(t reflect.Type) bool {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
