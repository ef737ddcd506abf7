// Package enumcache attaches typed metadata to the members of integer-backed
// enum types and caches it for repeated forward and reverse lookups.
//
// # Declaring metadata
//
// Metadata is declared once in a static [Registry], typically from an init
// function or generated code:
//
//	type Color int
//
//	const (
//	    Undefined Color = iota
//	    Red
//	    Green
//	)
//
//	var registry = enumcache.NewRegistry()
//
//	func init() {
//	    enumcache.MustDeclare(registry,
//	        enumcache.Member(Undefined),
//	        enumcache.Member(Red, enumcache.String("FF0000"), enumcache.KeyValue("css", "red")),
//	        enumcache.Member(Green, enumcache.String("00FF00")),
//	    )
//	}
//
// Built-in annotations are [Bool], [Double], [Integer], [Long], [String] and
// the multi-valued [KeyValue]. [Single] and [Multi] declare any other value
// type. Annotations are grouped by declared value type: a multi-valued group
// becomes one list entry in declaration order, a single-valued group keeps
// its first value.
//
// # Querying
//
//	cache, err := enumcache.New(registry, enumcache.Options{Method: enumcache.OnFirstUse})
//
//	hex, err := cache.GetStringValue(Red)                          // "FF0000"
//	pairs, err := enumcache.GetValues[enumcache.KeyValuePair](cache, Red)
//	c, found, err := enumcache.GetEnumValueByAttributeValue[Color](cache, "00FF00")
//
// Members are passed as any. A nil member, or a nil pointer to one, fails
// with [ErrNullArgument]; a value that is not of a named integer type fails
// with [ErrNotAnEnumType]. Missing metadata is never an error: getters
// return the zero value or a nil slice.
//
// # Caching methods
//
// The [CachingMethod] given at construction decides what a miss populates:
//
//   - [Explicit]: nothing. Call [CacheEnum], [Cache.CacheType] or
//     [Cache.CacheValue] first.
//   - [OnFirstUse]: the missed member only.
//   - [WholeTypeOnFirstUse]: every member of the missed member's type.
//
// Reverse lookups scan a whole type, so they only see types populated
// through the whole-type path; only WholeTypeOnFirstUse populates a type
// for a reverse lookup.
//
// # Concurrency
//
// All methods are safe for concurrent use. Concurrent misses on the same
// member or type collapse into one extraction, and the first committed
// result wins. Committed entries are never replaced or evicted.
package enumcache
