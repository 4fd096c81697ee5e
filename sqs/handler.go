package sqs

import (
	"context"
)

// Handler consumes one queue message. The returned O is sent back
// through the reply queue when the engine runs in reply mode and the
// message carries one; otherwise it is discarded. Use codec.Void for
// fire-and-forget consumers.
type Handler[I, O any] interface {
	Execute(ctx context.Context, m *Message[I]) (O, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[I, O any] func(ctx context.Context, m *Message[I]) (O, error)

// Execute calls f.
func (f HandlerFunc[I, O]) Execute(ctx context.Context, m *Message[I]) (O, error) {
	return f(ctx, m)
}
