package sf

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_Do(t *testing.T) {
	g := New[[]string]()

	v, shared, err := g.Do("k", func() ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	assert.False(t, shared)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestGroup_Error(t *testing.T) {
	g := New[int]()
	boom := errors.New("boom")

	v, _, err := g.Do("k", func() (int, error) { return 7, boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, v)
}

func TestGroup_CollapsesConcurrentCalls(t *testing.T) {
	g := New[int]()

	const callers = 16
	var (
		calls   atomic.Int32
		release = make(chan struct{})
		started sync.WaitGroup
		done    sync.WaitGroup
	)

	started.Add(1)
	done.Add(1)
	go func() {
		defer done.Done()
		_, _, _ = g.Do("k", func() (int, error) {
			started.Done()
			<-release
			calls.Add(1)
			return 42, nil
		})
	}()
	started.Wait()

	results := make([]int, callers)
	for i := range callers {
		done.Add(1)
		go func() {
			defer done.Done()
			v, _, err := g.Do("k", func() (int, error) {
				calls.Add(1)
				return 42, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	close(release)
	done.Wait()

	for _, v := range results {
		assert.Equal(t, 42, v)
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	assert.LessOrEqual(t, calls.Load(), int32(callers+1))
}
