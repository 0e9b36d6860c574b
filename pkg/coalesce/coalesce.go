// Package coalesce provides a keyed buffer that keeps only the latest value
// per key and flushes it in rate limited batches.
package coalesce

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Coalescer buffers values by key and flushes either by size or interval.
// A value added for a key already pending replaces the pending one.
type Coalescer[K comparable, V any] struct {
	flushCallback func(context.Context, []V) error
	entriesCh     chan entry[K, V]
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
	once sync.Once
}

// New constructs a Coalescer.
func New[K comparable, V any](logger *zap.Logger, flushCallback func(context.Context, []V) error, flushSize int, flushInterval time.Duration, rps int) *Coalescer[K, V] {
	if flushSize <= 0 {
		flushSize = 1
	}
	return &Coalescer[K, V]{
		logger:        logger,
		flushCallback: flushCallback,
		entriesCh:     make(chan entry[K, V], flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (c *Coalescer[K, V]) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop flushes what is pending and stops the loop. It is safe to call twice.
func (c *Coalescer[K, V]) Stop() {
	c.once.Do(func() { close(c.stop) })
	c.wg.Wait()
}

// Add queues the latest value of key, respecting context cancellation.
func (c *Coalescer[K, V]) Add(ctx context.Context, key K, value V) error {
	select {
	case <-c.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stop:
		return context.Canceled
	case c.entriesCh <- entry[K, V]{key: key, value: value}:
		return nil
	}
}

func (c *Coalescer[K, V]) run(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.flushInterval)
	defer ticker.Stop()

	order := make([]K, 0, c.flushSize)
	pending := make(map[K]V, c.flushSize)

	flush := func(ctx context.Context) {
		if len(order) == 0 {
			return
		}

		batch := make([]V, 0, len(order))
		for _, k := range order {
			batch = append(batch, pending[k])
		}

		c.rl.Take()
		err := c.flushCallback(ctx, batch)
		if err != nil {
			c.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		} else {
			c.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
		order = order[:0]
		clear(pending)
	}

	drain := func() {
		for {
			select {
			case e := <-c.entriesCh:
				if _, ok := pending[e.key]; !ok {
					order = append(order, e.key)
				}
				pending[e.key] = e.value
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case <-c.stop:
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case e := <-c.entriesCh:
			if _, ok := pending[e.key]; !ok {
				order = append(order, e.key)
			}
			pending[e.key] = e.value
			if len(order) >= c.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
