package sf

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent function calls with the same key.
// Only the first caller executes the function; others wait and receive
// the same result.
type Group[T any] struct {
	group singleflight.Group
}

// Do executes fn for the given key, deduplicating concurrent calls.
// If a call is already in-flight for this key, Do blocks until it completes
// and returns the same result with shared set to true.
func (g *Group[T]) Do(key string, fn func() (T, error)) (v T, shared bool, err error) {
	out, err, shared := g.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		return v, shared, err
	}
	return out.(T), shared, nil
}

// Forget drops an in-flight key so the next Do starts a fresh call.
func (g *Group[T]) Forget(key string) {
	g.group.Forget(key)
}

// New creates a new Group for type T.
func New[T any]() *Group[T] {
	return &Group[T]{}
}
