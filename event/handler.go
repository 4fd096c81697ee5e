package event

import (
	"context"
)

// Handler consumes one item of an asynchronous batch. Errors returned
// by Execute feed the engine's run mode; they are never swallowed or
// translated on their way out.
type Handler[I any] interface {
	Execute(ctx context.Context, item I) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[I any] func(ctx context.Context, item I) error

// Execute calls f.
func (f HandlerFunc[I]) Execute(ctx context.Context, item I) error {
	return f(ctx, item)
}
