package watcher

import (
	"context"
	"time"
)

type systemClock struct{}

// Timestamp returns current UTC unix timestamp in seconds.
func (c systemClock) Timestamp() int64 {
	return time.Now().UTC().Unix()
}

// Now returns current UTC time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Sleep waits d or until ctx is done, whichever comes first.
func (c systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
