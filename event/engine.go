package event

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aura-studio/gateway/codec"
)

// Engine runs one typed Handler behind an asynchronous (Event)
// invocation. The payload is a JSON array of items; failures drive the
// batch result according to the configured RunMode.
type Engine[I any] struct {
	*Options
	handler Handler[I]
	running atomic.Int32
}

// NewEngine creates an Engine for h. The engine starts in running
// state.
func NewEngine[I any](h Handler[I], opts ...Option) *Engine[I] {
	e := &Engine[I]{
		Options: NewOptions(opts...),
		handler: h,
	}
	e.running.Store(1)
	return e
}

// Start allows the engine to accept invocations.
func (e *Engine[I]) Start() {
	e.running.Store(1)
}

// Stop makes the engine reject new invocations.
func (e *Engine[I]) Stop() {
	e.running.Store(0)
}

// IsRunning reports whether the engine accepts invocations.
func (e *Engine[I]) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke handles one batch payload. A non-nil return makes the
// platform treat the whole invocation as failed (and retry it, for
// asynchronous invokes).
func (e *Engine[I]) Invoke(ctx context.Context, payload []byte) error {
	if !e.IsRunning() {
		return fmt.Errorf("event: engine is stopped")
	}

	items, err := codec.Decode[[]I](string(payload))
	if err != nil {
		if e.DebugMode {
			log.Printf("[Event] Decode error: %v", err)
		}
		return err
	}

	return e.processItems(ctx, items)
}

func (e *Engine[I]) processItems(ctx context.Context, items []I) error {
	var lastErr error

	for i, item := range items {
		if !e.IsRunning() {
			return fmt.Errorf("event: engine stopped during processing")
		}

		err := e.processItem(ctx, item)
		if err != nil {
			if e.DebugMode {
				log.Printf("[Event] Item %d error: %v", i, err)
			}

			switch e.RunMode {
			case RunModeStrict:
				return err
			case RunModePartial:
				lastErr = err
				continue
			case RunModeBatch:
				return err
			case RunModeReentrant:
				lastErr = err
				continue
			default:
				return err
			}
		}
	}

	switch e.RunMode {
	case RunModePartial:
		return nil
	case RunModeReentrant:
		return lastErr
	default:
		return nil
	}
}

func (e *Engine[I]) processItem(ctx context.Context, item I) error {
	if e.Validation {
		if err := codec.Validate(item); err != nil {
			return err
		}
	}
	return e.handler.Execute(ctx, item)
}
