// Package resource keeps remote resources in sync with the screens that show them:
// a fetch guard that allows one request per resource at a time, and a generic
// controller that pairs it with server-side pagination state.
package resource

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrLoadInFlight is returned when a load is dropped because another one is running
var ErrLoadInFlight = errors.New("load already in progress")

// Guard allows at most one outstanding request per resource. Calls made while a
// request is running are dropped, not queued.
type Guard struct {
	inFlight atomic.Bool
}

// TryAcquire takes the in-flight flag, reporting false when it is already held
func (g *Guard) TryAcquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

// Release clears the in-flight flag
func (g *Guard) Release() {
	g.inFlight.Store(false)
}

// InFlight reports whether a request is running
func (g *Guard) InFlight() bool {
	return g.inFlight.Load()
}

// Do runs fn when no other call is in flight and releases the flag whatever fn returns
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if !g.TryAcquire() {
		return ErrLoadInFlight
	}
	defer g.Release()
	return fn(ctx)
}
