package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pocketbtc/utxo-engine/pkg/cache"
)

func TestSetGet(t *testing.T) {
	t.Parallel()

	c := cache.New[[]string]("test", time.Minute)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("key", []string{"a", "b"})
	got, ok := c.Get("key")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestEntryExpires(t *testing.T) {
	t.Parallel()

	c := cache.New[int]("test", 20*time.Millisecond)
	c.Set("key", 42)

	got, ok := c.Get("key")
	require.True(t, ok)
	require.Equal(t, 42, got)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("key")
	require.False(t, ok)

	// A later Set for the same key overwrites the stale entry.
	c.Set("key", 43)
	got, ok = c.Get("key")
	require.True(t, ok)
	require.Equal(t, 43, got)
}

func TestFlush(t *testing.T) {
	t.Parallel()

	c := cache.New[int]("test", time.Minute)
	c.Set("key", 1)
	c.Flush()

	_, ok := c.Get("key")
	require.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := cache.New[int]("test", time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(fmt.Sprintf("key-%d", i%4), i)
		}()
		go func() {
			defer wg.Done()
			c.Get(fmt.Sprintf("key-%d", i%4))
		}()
	}
	wg.Wait()

	// Whatever write won, the entry must be intact.
	for i := 0; i < 4; i++ {
		v, ok := c.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		require.GreaterOrEqual(t, v, 0)
	}
}
