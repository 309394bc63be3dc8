package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// SessionProber answers whether the browser still holds a valid session.
type SessionProber interface {
	Probe(ctx context.Context) (bool, error)
}

// Coordinator turns concurrent 401s into a single session probe. The first
// caller runs the probe; everyone arriving while it runs is queued and
// released, in arrival order, with the probe's outcome.
type Coordinator struct {
	probe     SessionProber
	onExpired func(ctx context.Context)
	metrics   *Metrics
	logger    *slog.Logger

	mu         sync.Mutex
	refreshing bool
	queue      []*pendingRequest
}

type pendingRequest struct {
	done chan error
}

type CoordinatorOption func(*Coordinator)

// OnExpired registers the forced sign-out action run once per failed refresh.
func OnExpired(fn func(ctx context.Context)) CoordinatorOption {
	return func(c *Coordinator) {
		c.onExpired = fn
	}
}

func WithRefreshMetrics(m *Metrics) CoordinatorOption {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

func WithRefreshLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCoordinator(probe SessionProber, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		probe:  probe,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pending reports how many callers are parked behind the in-flight refresh.
func (c *Coordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

func (c *Coordinator) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// Await blocks until the shared refresh concludes. A nil result means the
// session is valid and the caller may re-issue its request once.
func (c *Coordinator) Await(ctx context.Context) error {
	c.mu.Lock()
	if c.refreshing {
		entry := &pendingRequest{done: make(chan error, 1)}
		c.queue = append(c.queue, entry)
		c.mu.Unlock()
		c.metrics.observeQueued()

		select {
		case err := <-entry.done:
			return err
		case <-ctx.Done():
			// the entry is still flushed later; its channel is buffered
			return transportError(ctx.Err())
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	return c.refresh(ctx)
}

func (c *Coordinator) refresh(ctx context.Context) error {
	var result error = sessionExpired(nil)
	defer func() {
		c.flush(result)
	}()

	// one caller going away must not decide the session for every waiter
	probeCtx := context.WithoutCancel(ctx)
	ok, err := c.probe.Probe(probeCtx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.logger.WarnContext(ctx, "session probe interrupted", "error", err)
		result = transportError(err)
		return result
	case err != nil:
		c.logger.WarnContext(ctx, "session probe failed", "error", err)
		result = sessionExpired(err)
	case !ok:
		result = sessionExpired(nil)
	default:
		result = nil
	}
	c.metrics.observeRefresh(result == nil)

	if result != nil {
		c.logger.InfoContext(ctx, "session expired, forcing sign-out", "queued", c.Pending())
		if c.onExpired != nil {
			c.onExpired(probeCtx)
		}
	}
	return result
}

// flush releases every queued caller and clears the refreshing flag. It runs
// deferred so a panicking probe cannot leave the coordinator stuck.
func (c *Coordinator) flush(result error) {
	c.mu.Lock()
	queue := c.queue
	c.queue = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, entry := range queue {
		entry.done <- result
	}
}
