package flight

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuppressor(now time.Time) *suppressor {
	s := NewSuppressor().(*suppressor)
	s.now = func() time.Time { return now }

	return s
}

func TestSuppressor_Do_CollapsesConcurrentCalls(t *testing.T) {
	s := NewSuppressor().(*suppressor)

	var executions atomic.Int32
	release := make(chan struct{})
	fn := func() (any, error) {
		executions.Add(1)
		<-release

		return "result", nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]any, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.Do("register:user@example.com", fn)
			require.NoError(t, err)
			results[i] = result
		}()
	}

	// Give the goroutines a moment to pile onto the same key, then release.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), executions.Load())
	for _, result := range results {
		assert.Equal(t, "result", result)
	}
}

func TestSuppressor_Do_SequentialCallsRunAgain(t *testing.T) {
	s := NewSuppressor().(*suppressor)

	var executions int
	fn := func() (any, error) {
		executions++

		return executions, nil
	}

	first, err := s.Do("key", fn)
	require.NoError(t, err)
	second, err := s.Do("key", fn)
	require.NoError(t, err)

	// The key is forgotten once fn returns; no result caching.
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestSuppressor_Allow_StartsCooldown(t *testing.T) {
	now := time.Now()
	s := newTestSuppressor(now)

	assert.True(t, s.Allow("resend:user@example.com", time.Minute))
	assert.False(t, s.Allow("resend:user@example.com", time.Minute))

	// A different key has its own window.
	assert.True(t, s.Allow("resend:other@example.com", time.Minute))
}

func TestSuppressor_Allow_WindowExpires(t *testing.T) {
	now := time.Now()
	s := newTestSuppressor(now)

	assert.True(t, s.Allow("key", time.Minute))

	s.now = func() time.Time { return now.Add(59 * time.Second) }
	assert.False(t, s.Allow("key", time.Minute))

	s.now = func() time.Time { return now.Add(61 * time.Second) }
	assert.True(t, s.Allow("key", time.Minute))
}

func TestSuppressor_Sweep_DropsExpiredEntries(t *testing.T) {
	now := time.Now()
	s := newTestSuppressor(now)

	s.Allow("expired-a", time.Minute)
	s.Allow("expired-b", time.Minute)
	s.Allow("live", time.Hour)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	removed := s.Sweep(context.Background())

	assert.Equal(t, 2, removed)
	// The live entry still blocks.
	assert.False(t, s.Allow("live", time.Hour))
	// Swept keys may fire again.
	assert.True(t, s.Allow("expired-a", time.Minute))
}
