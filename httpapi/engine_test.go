package httpapi

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

func TestEngine_Invoke_RunsHandler(t *testing.T) {
	e := NewEngine(HandlerFunc[pingInput, pingOutput](func(ctx context.Context, c *Context[pingInput, pingOutput]) (events.APIGatewayV2HTTPResponse, error) {
		return c.Send(pingOutput{Result: len(c.Body.Name)})
	}))

	resp, err := e.Invoke(context.Background(), v2Event(`{"name":"ab"}`))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if resp.Body != `{"result":2}` {
		t.Fatalf("Body = %s", resp.Body)
	}
}

func TestEngine_Invoke_HandlerErrorPassesThroughVerbatim(t *testing.T) {
	sentinel := errors.New("boom")
	e := NewEngine(HandlerFunc[pingInput, pingOutput](func(context.Context, *Context[pingInput, pingOutput]) (events.APIGatewayV2HTTPResponse, error) {
		return events.APIGatewayV2HTTPResponse{}, sentinel
	}))

	_, err := e.Invoke(context.Background(), v2Event(`{"name":"a"}`))
	if err != sentinel {
		t.Fatalf("Handler error was translated: %v", err)
	}
}

func TestEngine_Invoke_DecodeErrorSkipsHandler(t *testing.T) {
	ran := false
	e := NewEngine(HandlerFunc[pingInput, pingOutput](func(ctx context.Context, c *Context[pingInput, pingOutput]) (events.APIGatewayV2HTTPResponse, error) {
		ran = true
		return c.Send(pingOutput{})
	}))

	_, err := e.Invoke(context.Background(), v2Event("{"))
	if !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %v", err)
	}
	if ran {
		t.Fatal("Handler must not run on decode failure")
	}
}

func TestEngine_Invoke_Stopped(t *testing.T) {
	e := NewEngine(HandlerFunc[pingInput, pingOutput](func(ctx context.Context, c *Context[pingInput, pingOutput]) (events.APIGatewayV2HTTPResponse, error) {
		return c.Send(pingOutput{})
	}))
	e.Stop()

	if _, err := e.Invoke(context.Background(), v2Event(`{"name":"a"}`)); err == nil {
		t.Fatal("Expected error from stopped engine")
	}
}

func TestEngine_Invoke_DefaultHeaders(t *testing.T) {
	e := NewEngine(HandlerFunc[pingInput, pingOutput](func(ctx context.Context, c *Context[pingInput, pingOutput]) (events.APIGatewayV2HTTPResponse, error) {
		return c.Send(pingOutput{})
	}), WithDefaultHeader("Content-Type", "application/json"))

	resp, err := e.Invoke(context.Background(), v2Event(`{"name":"a"}`))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Fatalf("Headers = %v", resp.Headers)
	}
}

func TestWithConfig_ParsesYAML(t *testing.T) {
	o := NewOptions(WithConfig([]byte("debug: true\nvalidation: true")))
	if !o.DebugMode || !o.Validation {
		t.Fatalf("Options = %+v", o)
	}
}
