package httpapi

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

// Context carries one API Gateway HTTP API (payload v2) invocation:
// the raw event, the body decoded into I exactly once at construction,
// and the response state staged until a terminal Send.
type Context[I, O any] struct {
	// Request is the event as delivered by the platform. The library
	// never modifies it.
	Request events.APIGatewayV2HTTPRequest

	// Body is the decoded request payload, fixed at construction.
	Body I

	status  int
	headers map[string]string
	cookies []string
	err     error
}

// NewContext decodes the event body into I and wraps the event. A body
// that cannot be decoded yields no context and a *codec.UnmarshalError.
func NewContext[I, O any](event events.APIGatewayV2HTTPRequest) (*Context[I, O], error) {
	body, err := ReceiveRequest[I](event)
	if err != nil {
		return nil, err
	}
	return &Context[I, O]{Request: event, Body: body}, nil
}

// AddHeader stages an outgoing header. Writing a name again overwrites
// the previous value. Returns the context for chaining.
func (c *Context[I, O]) AddHeader(name, value string) *Context[I, O] {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[name] = value
	return c
}

// AddJSONHeader stages an outgoing header whose value is the JSON
// encoding of value. An encode failure is held on the context and
// returned by the terminal Send or SendStatus. Returns the context.
func (c *Context[I, O]) AddJSONHeader(name string, value any) *Context[I, O] {
	text, err := codec.Encode(value)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}
	return c.AddHeader(name, text)
}

// AddCookie stages a Set-Cookie entry. Cookies accumulate in call
// order; the v2 payload carries them outside the header map. Returns
// the context for chaining.
func (c *Context[I, O]) AddCookie(cookie string) *Context[I, O] {
	c.cookies = append(c.cookies, cookie)
	return c
}

// SetStatus stages the response status code. Returns the context for
// chaining.
func (c *Context[I, O]) SetStatus(code int) *Context[I, O] {
	c.status = code
	return c
}

// Status returns the staged status code, or DefaultStatus when none
// was staged.
func (c *Context[I, O]) Status() int {
	if c.status == 0 {
		return DefaultStatus
	}
	return c.status
}

// Headers returns a copy of the staged headers. The copy is never nil.
func (c *Context[I, O]) Headers() map[string]string {
	h := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		h[k] = v
	}
	return h
}

// Send encodes payload as the response body and assembles the response
// from the staged status, headers and cookies.
func (c *Context[I, O]) Send(payload O) (events.APIGatewayV2HTTPResponse, error) {
	return c.send(c.Status(), payload)
}

// SendStatus is Send with an explicit status code that wins over any
// staged one.
func (c *Context[I, O]) SendStatus(code int, payload O) (events.APIGatewayV2HTTPResponse, error) {
	return c.send(code, payload)
}

func (c *Context[I, O]) send(code int, payload O) (events.APIGatewayV2HTTPResponse, error) {
	if c.err != nil {
		return events.APIGatewayV2HTTPResponse{}, c.err
	}
	resp, err := SendResponse(payload, code, c.headers)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	if len(c.cookies) > 0 {
		resp.Cookies = append([]string(nil), c.cookies...)
	}
	return resp, nil
}
