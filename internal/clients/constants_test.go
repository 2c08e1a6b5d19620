package clients

import (
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{5, 16 * time.Second},
		{6, 32 * time.Second},
		{10, 32 * time.Second},
	}

	for _, tt := range tests {
		if got := BackoffDelay(tt.attempt); got != tt.want {
			t.Errorf("BackoffDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestBackoffDelayNeverExceedsCap(t *testing.T) {
	for attempt := 1; attempt <= MAX_RETRIES*4; attempt++ {
		if d := BackoffDelay(attempt); d > MAX_BACKOFF {
			t.Errorf("BackoffDelay(%d) = %v exceeds cap %v", attempt, d, MAX_BACKOFF)
		}
	}
}
