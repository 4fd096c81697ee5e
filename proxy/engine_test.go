package proxy

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

func echoHandler() HandlerFunc[echoInput, echoOutput] {
	return func(ctx context.Context, c *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		return c.Send(echoOutput{Result: len(c.Body.Name)})
	}
}

func TestEngine_Invoke_RunsHandler(t *testing.T) {
	e := NewEngine(echoHandler())

	resp, err := e.Invoke(context.Background(), proxyEvent(`{"name":"four"}`))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d", resp.StatusCode)
	}
	if resp.Body != `{"result":4}` {
		t.Fatalf("Body = %s", resp.Body)
	}
}

func TestEngine_Invoke_DecodeErrorSkipsHandler(t *testing.T) {
	ran := false
	e := NewEngine(HandlerFunc[echoInput, echoOutput](func(ctx context.Context, c *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		ran = true
		return c.Send(echoOutput{})
	}))

	_, err := e.Invoke(context.Background(), proxyEvent(""))
	if !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %v", err)
	}
	if ran {
		t.Fatal("Handler must not run on decode failure")
	}
}

func TestEngine_Invoke_HandlerErrorPassesThroughVerbatim(t *testing.T) {
	sentinel := errors.New("boom")
	e := NewEngine(HandlerFunc[echoInput, echoOutput](func(context.Context, *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, sentinel
	}))

	_, err := e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`))
	if err != sentinel {
		t.Fatalf("Handler error was translated: %v", err)
	}
}

func TestEngine_Invoke_PanicReachesCaller(t *testing.T) {
	e := NewEngine(HandlerFunc[echoInput, echoOutput](func(context.Context, *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		panic("boom")
	}))

	recovered := func() (r any) {
		defer func() { r = recover() }()
		_, _ = e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`))
		return nil
	}()
	if recovered == nil {
		t.Fatal("Expected handler panic to cross Invoke")
	}
}

func TestEngine_Invoke_Stopped(t *testing.T) {
	ran := false
	e := NewEngine(HandlerFunc[echoInput, echoOutput](func(ctx context.Context, c *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		ran = true
		return c.Send(echoOutput{})
	}))
	e.Stop()

	if _, err := e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`)); err == nil {
		t.Fatal("Expected error from stopped engine")
	}
	if ran {
		t.Fatal("Handler must not run on a stopped engine")
	}

	e.Start()
	if _, err := e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`)); err != nil {
		t.Fatalf("Invoke after Start failed: %v", err)
	}
}

func TestEngine_Invoke_DefaultHeaders(t *testing.T) {
	e := NewEngine(echoHandler(), WithDefaultHeader("X-Powered-By", "gateway"))

	resp, err := e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if resp.Headers["X-Powered-By"] != "gateway" {
		t.Fatalf("Headers = %v", resp.Headers)
	}
}

func TestEngine_Invoke_HandlerOverridesDefaultHeader(t *testing.T) {
	e := NewEngine(HandlerFunc[echoInput, echoOutput](func(ctx context.Context, c *Context[echoInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		return c.AddHeader("X-Powered-By", "handler").Send(echoOutput{})
	}), WithDefaultHeader("X-Powered-By", "gateway"))

	resp, err := e.Invoke(context.Background(), proxyEvent(`{"name":"a"}`))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if resp.Headers["X-Powered-By"] != "handler" {
		t.Fatalf("Headers = %v", resp.Headers)
	}
}

type validatedInput struct {
	Name string `json:"name" validate:"required"`
}

func TestEngine_Invoke_Validation(t *testing.T) {
	ran := false
	e := NewEngine(HandlerFunc[validatedInput, echoOutput](func(ctx context.Context, c *Context[validatedInput, echoOutput]) (events.APIGatewayProxyResponse, error) {
		ran = true
		return c.Send(echoOutput{Result: 1})
	}), WithValidation(true))

	if _, err := e.Invoke(context.Background(), proxyEvent(`{"name":""}`)); err == nil {
		t.Fatal("Expected validation error")
	}
	if ran {
		t.Fatal("Handler must not run on validation failure")
	}

	if _, err := e.Invoke(context.Background(), proxyEvent(`{"name":"ok"}`)); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !ran {
		t.Fatal("Handler should run once validation passes")
	}
}

func TestWrap_LowersHandler(t *testing.T) {
	fn := Wrap[echoInput, echoOutput](echoHandler())

	resp, err := fn(context.Background(), proxyEvent(`{"name":"abc"}`))
	if err != nil {
		t.Fatalf("Wrapped handler failed: %v", err)
	}
	if resp.Body != `{"result":3}` {
		t.Fatalf("Body = %s", resp.Body)
	}

	if _, err := fn(context.Background(), proxyEvent("not json")); !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %v", err)
	}
}
