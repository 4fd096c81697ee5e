package proxy

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

// Engine runs one typed Handler behind the Lambda proxy integration.
// It applies the configured default headers and optional body
// validation around the handler, and nothing else: handler errors and
// codec errors leave Invoke exactly as they were raised.
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

// Invoke handles one proxy event. It is the function handed to
// lambda.Start by Serve.
func (e *Engine[I, O]) Invoke(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !e.IsRunning() {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("proxy: engine is stopped")
	}

	if e.DebugMode {
		log.Printf("[Proxy] Request: %s %s %s", event.HTTPMethod, event.Path, event.Body)
	}

	c, err := NewContext[I, O](event)
	if err != nil {
		if e.DebugMode {
			log.Printf("[Proxy] Decode error: %v", err)
		}
		return events.APIGatewayProxyResponse{}, err
	}

	if e.Validation {
		if err := codec.Validate(c.Body); err != nil {
			if e.DebugMode {
				log.Printf("[Proxy] Validation error: %v", err)
			}
			return events.APIGatewayProxyResponse{}, err
		}
	}

	for name, value := range e.DefaultHeaders {
		c.AddHeader(name, value)
	}

	resp, err := e.handler.Execute(ctx, c)
	if e.DebugMode {
		if err != nil {
			log.Printf("[Proxy] Handler error: %v", err)
		} else {
			log.Printf("[Proxy] Response: %d %s", resp.StatusCode, resp.Body)
		}
	}
	return resp, err
}
