package invoke

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aura-studio/gateway/codec"
)

// Engine runs one typed Handler behind a direct (RequestResponse)
// Lambda invocation: the payload is the JSON request document, the
// returned payload is the JSON response document.
type Engine[I, O any] struct {
	*Options
	handler Handler[I, O]
	running atomic.Int32
}

// NewEngine creates an Engine for h. The engine starts in running
// state.
func NewEngine[I, O any](h Handler[I, O], opts ...Option) *Engine[I, O] {
	e := &Engine[I, O]{
		Options: NewOptions(opts...),
		handler: h,
	}
	e.running.Store(1)
	return e
}

// Start allows the engine to accept invocations.
func (e *Engine[I, O]) Start() {
	e.running.Store(1)
}

// Stop makes the engine reject new invocations.
func (e *Engine[I, O]) Stop() {
	e.running.Store(0)
}

// IsRunning reports whether the engine accepts invocations.
func (e *Engine[I, O]) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke handles one invocation payload. Decode failures, handler
// errors and encode failures are returned as is; the platform reports
// them as function errors to the caller.
func (e *Engine[I, O]) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	if !e.IsRunning() {
		return nil, fmt.Errorf("invoke: engine is stopped")
	}

	if e.DebugMode {
		log.Printf("[Invoke] Request: %s", payload)
	}

	req, err := codec.Decode[I](string(payload))
	if err != nil {
		if e.DebugMode {
			log.Printf("[Invoke] Decode error: %v", err)
		}
		return nil, err
	}

	if e.Validation {
		if err := codec.Validate(req); err != nil {
			if e.DebugMode {
				log.Printf("[Invoke] Validation error: %v", err)
			}
			return nil, err
		}
	}

	resp, err := e.handler.Execute(ctx, req)
	if err != nil {
		if e.DebugMode {
			log.Printf("[Invoke] Handler error: %v", err)
		}
		return nil, err
	}

	body, err := codec.Encode(resp)
	if err != nil {
		if e.DebugMode {
			log.Printf("[Invoke] Encode error: %v", err)
		}
		return nil, err
	}

	if e.DebugMode {
		log.Printf("[Invoke] Response: %s", body)
	}
	return []byte(body), nil
}
