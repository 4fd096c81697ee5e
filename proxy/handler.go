package proxy

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// Handler executes one typed invocation. Execute owns the full
// exchange: it reads the decoded body from the Context and returns the
// response it built, usually through the Context's Send.
//
// Errors returned by Execute, and panics raised inside it, cross this
// layer untouched. The library performs no recovery and no error
// translation anywhere between the platform and the handler.
type Handler[I, O any] interface {
	Execute(ctx context.Context, c *Context[I, O]) (events.APIGatewayProxyResponse, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[I, O any] func(ctx context.Context, c *Context[I, O]) (events.APIGatewayProxyResponse, error)

// Execute calls f.
func (f HandlerFunc[I, O]) Execute(ctx context.Context, c *Context[I, O]) (events.APIGatewayProxyResponse, error) {
	return f(ctx, c)
}

// Wrap lowers a Handler into the raw function shape the Lambda runtime
// invokes. Body decode failures and handler results pass through
// verbatim.
func Wrap[I, O any](h Handler[I, O]) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		c, err := NewContext[I, O](event)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.Execute(ctx, c)
	}
}
