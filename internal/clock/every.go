// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Every calls fn right away and then once per interval until ctx is done.
// A call that outlasts the interval delays the next one; calls never overlap.
// It returns ctx.Err().
func Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) error {
	if interval <= 0 {
		interval = time.Second
	}
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		fn(ctx)
		timer.Reset(interval)
	}
}
