package invoke

import (
	"context"
)

// Handler executes one typed request/response invocation over a raw
// JSON payload. Errors returned by Execute, and panics raised inside
// it, cross this layer untouched and surface as function errors on the
// platform.
type Handler[I, O any] interface {
	Execute(ctx context.Context, req I) (O, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[I, O any] func(ctx context.Context, req I) (O, error)

// Execute calls f.
func (f HandlerFunc[I, O]) Execute(ctx context.Context, req I) (O, error) {
	return f(ctx, req)
}
