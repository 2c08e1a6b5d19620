package clients

import "time"

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
)

// BackoffDelay returns the wait before the next attempt (1-based),
// doubling from INITIAL_BACKOFF and capped at MAX_BACKOFF.
func BackoffDelay(attempt int) time.Duration {
	delay := INITIAL_BACKOFF
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MAX_BACKOFF {
			return MAX_BACKOFF
		}
	}
	return delay
}
