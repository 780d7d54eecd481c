package crawl_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements newscrawl.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ newscrawl.DomainLimiter = crawl.NewDomainLimiter(1, 1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10, 1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.moneycontrol.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10, 1) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "www.moneycontrol.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.moneycontrol.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("shares bucket between www and bare host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "www.moneycontrol.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "moneycontrol.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "www.moneycontrol.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "news.example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0, 0)

		start := time.Now()
		for range 20 {
			require.NoError(t, limiter.Wait(context.Background(), "www.moneycontrol.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1, 1)

		require.NoError(t, limiter.Wait(context.Background(), "www.moneycontrol.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "www.moneycontrol.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests are serialized per domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100, 1)

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "www.moneycontrol.com"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}
