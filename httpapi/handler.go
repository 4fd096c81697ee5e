package httpapi

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// Handler executes one typed invocation. Errors returned by Execute,
// and panics raised inside it, cross this layer untouched.
type Handler[I, O any] interface {
	Execute(ctx context.Context, c *Context[I, O]) (events.APIGatewayV2HTTPResponse, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[I, O any] func(ctx context.Context, c *Context[I, O]) (events.APIGatewayV2HTTPResponse, error)

// Execute calls f.
func (f HandlerFunc[I, O]) Execute(ctx context.Context, c *Context[I, O]) (events.APIGatewayV2HTTPResponse, error) {
	return f(ctx, c)
}

// Wrap lowers a Handler into the raw function shape the Lambda runtime
// invokes. Body decode failures and handler results pass through
// verbatim.
func Wrap[I, O any](h Handler[I, O]) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		c, err := NewContext[I, O](event)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}
		return h.Execute(ctx, c)
	}
}
