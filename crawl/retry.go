package crawl

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before each retry with the attempt number (starting at 2)
// and the error of the previous attempt.
type RetryFunc func(url string, attempt int, err error)

// BackoffDelays returns n exponentially growing delays starting at base:
// base, 2*base, 4*base, ...
// Zero retries yields nil, meaning a single attempt.
func BackoffDelays(n int, base time.Duration) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	d := base
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// FetchWithRetry fetches url once plus one retry per entry in delays,
// waiting delays[i] before retry i. With no delays it makes a single attempt.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration, onRetry RetryFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", lastErr
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
