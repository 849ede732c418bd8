package resource

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/pkg/logger"
)

// FetchFunc loads one page of a server-paginated resource. page is 0-indexed.
type FetchFunc[T any] func(ctx context.Context, page, size int) (*models.PaginatedResponse[T], error)

// Snapshot is a consistent copy of a controller's state
type Snapshot[T any] struct {
	Items      []T              `json:"items"`
	Pagination pagination.State `json:"pagination"`
	Loading    bool             `json:"loading"`
	LastError  string           `json:"lastError,omitempty"`
	LoadedAt   *time.Time       `json:"loadedAt,omitempty"`
}

// Controller is the paginated resource controller shared by every server-paginated
// screen. It owns the items of the current page, the pagination state and the fetch
// guard of one resource.
type Controller[T any] struct {
	name     string
	fetch    FetchFunc[T]
	logger   *logger.Logger
	guard    Guard
	mounted  atomic.Bool
	onLoaded func(Snapshot[T])
	now      func() time.Time

	mu       sync.RWMutex
	items    []T
	state    pagination.State
	loading  bool
	lastErr  error
	loadedAt time.Time
}

// NewController creates a controller for the named resource with the initial page size
func NewController[T any](name string, fetch FetchFunc[T], size int, log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		name:   name,
		fetch:  fetch,
		logger: log,
		now:    time.Now,
		items:  []T{},
		state:  pagination.NewState(size),
	}
}

// OnLoaded registers a hook run after every successful load, outside the lock
func (c *Controller[T]) OnLoaded(fn func(Snapshot[T])) {
	c.onLoaded = fn
}

// Mount issues the initial load. Only the first call loads; later calls are no-ops.
func (c *Controller[T]) Mount(ctx context.Context) (Snapshot[T], error) {
	if !c.mounted.CompareAndSwap(false, true) {
		return c.Snapshot(), nil
	}
	return c.Load(ctx, true)
}

// Mounted reports whether Mount has run
func (c *Controller[T]) Mounted() bool {
	return c.mounted.Load()
}

// Load fetches the current page. It returns ErrLoadInFlight without fetching when a
// load is already running. On failure the previous items and pagination stay as they were.
func (c *Controller[T]) Load(ctx context.Context, showLoading bool) (Snapshot[T], error) {
	if !c.guard.TryAcquire() {
		c.logger.WithField("resource", c.name).Debug("Load already in progress, skipping")
		return c.Snapshot(), ErrLoadInFlight
	}
	defer c.guard.Release()

	c.mu.Lock()
	page, size := c.state.Page, c.state.Size
	if showLoading {
		c.loading = true
	}
	c.mu.Unlock()

	if showLoading {
		defer func() {
			c.mu.Lock()
			c.loading = false
			c.mu.Unlock()
		}()
	}

	resp, err := c.fetch(ctx, page, size)
	if err == nil && resp == nil {
		err = fmt.Errorf("%s: empty response", c.name)
	}
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()

		c.logger.WithError(err).WithFields(map[string]interface{}{
			"resource": c.name,
			"page":     page,
			"size":     size,
		}).Error("Failed to load resource")
		return c.Snapshot(), err
	}

	items := make([]T, len(resp.Data))
	copy(items, resp.Data)

	c.mu.Lock()
	c.items = items
	c.state.Apply(resp.Meta())
	c.lastErr = nil
	c.loadedAt = c.now()
	c.mu.Unlock()

	snap := c.Snapshot()
	c.logger.WithFields(map[string]interface{}{
		"resource":    c.name,
		"page":        snap.Pagination.Page,
		"size":        snap.Pagination.Size,
		"total_items": snap.Pagination.TotalItems,
		"count":       len(snap.Items),
	}).Debug("Resource loaded")

	if c.onLoaded != nil {
		c.onLoaded(snap)
	}
	return snap, nil
}

// Refresh reloads the current page
func (c *Controller[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	return c.Load(ctx, true)
}

// SetPage moves to page p (0-indexed) and loads it
func (c *Controller[T]) SetPage(ctx context.Context, p int) (Snapshot[T], error) {
	if err := c.mutate(func(s *pagination.State) error { return s.SetPage(p) }); err != nil {
		return c.Snapshot(), err
	}
	return c.Load(ctx, true)
}

// SetSize changes the page size, goes back to the first page and loads it
func (c *Controller[T]) SetSize(ctx context.Context, size int) (Snapshot[T], error) {
	if err := c.mutate(func(s *pagination.State) error { return s.SetSize(size) }); err != nil {
		return c.Snapshot(), err
	}
	return c.Load(ctx, true)
}

// Next loads the following page when there is one
func (c *Controller[T]) Next(ctx context.Context) (Snapshot[T], error) {
	if err := c.mutate((*pagination.State).Next); err != nil {
		return c.Snapshot(), err
	}
	return c.Load(ctx, true)
}

// Previous loads the preceding page when there is one
func (c *Controller[T]) Previous(ctx context.Context) (Snapshot[T], error) {
	if err := c.mutate((*pagination.State).Previous); err != nil {
		return c.Snapshot(), err
	}
	return c.Load(ctx, true)
}

// Snapshot returns a copy of the current state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	snap := Snapshot[T]{
		Items:      items,
		Pagination: c.state,
		Loading:    c.loading,
	}
	if c.lastErr != nil {
		snap.LastError = c.lastErr.Error()
	}
	if !c.loadedAt.IsZero() {
		t := c.loadedAt
		snap.LoadedAt = &t
	}
	return snap
}

func (c *Controller[T]) mutate(fn func(*pagination.State) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(&c.state)
}
