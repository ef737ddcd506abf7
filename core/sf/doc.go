// Package sf provides a generic single-flight mechanism for deduplicating
// concurrent function calls with the same key.
//
// If multiple goroutines call [Group.Do] with the same key concurrently, only
// the first call executes the function; subsequent callers block until the
// first call completes and then receive the same result. The shared flag
// tells a caller whether its result came from another caller's execution.
//
// # Usage
//
//	g := sf.New[[]Entry]()
//
//	entries, shared, err := g.Do("member/1/3", func() ([]Entry, error) {
//	    return extract(member)
//	})
//
// The generic type parameter T allows type-safe returns without casting.
package sf
