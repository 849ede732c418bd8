package aggregate

import (
	"context"
	"math"
	"time"
)

// DefaultCountUpDuration is how long a stat card takes to reach its value
const DefaultCountUpDuration = 800 * time.Millisecond

// CountUpValue is the value shown elapsed into a count-up of duration towards target
func CountUpValue(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return 0
	}
	percent := float64(elapsed) / float64(duration)
	return int(math.Floor(percent * float64(target)))
}

// CountUp emits the intermediate values of a count-up from 0 to target, one per frame.
// The first frame fixes the start time. It returns once target has been emitted, or
// with the context error when ctx ends first or the frame channel closes.
func CountUp(ctx context.Context, target int, duration time.Duration, frames <-chan time.Time, emit func(int)) error {
	var start time.Time
	last := math.MinInt

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts, ok := <-frames:
			if !ok {
				return context.Canceled
			}
			if start.IsZero() {
				start = ts
			}
			v := CountUpValue(target, ts.Sub(start), duration)
			if v != last {
				emit(v)
				last = v
			}
			if v == target && ts.Sub(start) >= duration {
				return nil
			}
		}
	}
}
