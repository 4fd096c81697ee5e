package proxy

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

type echoInput struct {
	Name string `json:"name"`
}

type echoOutput struct {
	Result int `json:"result"`
}

func proxyEvent(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/echo",
		Body:       body,
	}
}

func newEchoContext(t *testing.T, body string) *Context[echoInput, echoOutput] {
	t.Helper()
	c, err := NewContext[echoInput, echoOutput](proxyEvent(body))
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return c
}

func TestNewContext_DecodesBodyOnce(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	if c.Body.Name != "a" {
		t.Fatalf("Body = %+v", c.Body)
	}
	if c.Request.Body != `{"name":"a"}` {
		t.Fatalf("Raw event body modified: %q", c.Request.Body)
	}
}

func TestNewContext_MatchesDirectDecode(t *testing.T) {
	body := `{"name":"roundtrip"}`
	c := newEchoContext(t, body)

	var direct echoInput
	if err := json.Unmarshal([]byte(body), &direct); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if c.Body != direct {
		t.Fatalf("Body %+v differs from direct decode %+v", c.Body, direct)
	}
}

func TestNewContext_EmptyBody_Fails(t *testing.T) {
	_, err := NewContext[echoInput, echoOutput](proxyEvent(""))
	if err == nil {
		t.Fatal("Expected error for empty body")
	}
	if !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %T", err)
	}
}

func TestNewContext_MalformedBody_Fails(t *testing.T) {
	_, err := NewContext[echoInput, echoOutput](proxyEvent(`{"name":`))
	if !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %v", err)
	}
}

func TestContext_AddHeader_LastWriteWins(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	c.AddHeader("X-Test", "first").AddHeader("X-Test", "second")

	resp, err := c.Send(echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.Headers["X-Test"] != "second" {
		t.Fatalf("Headers = %v", resp.Headers)
	}
}

func TestContext_Send_DefaultStatus(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	resp, err := c.Send(echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Headers == nil || len(resp.Headers) != 0 {
		t.Fatalf("Headers = %v, want empty non-nil map", resp.Headers)
	}
}

func TestContext_Send_UsesStagedStatus(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	resp, err := c.SetStatus(http.StatusAccepted).Send(echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("StatusCode = %d, want 202", resp.StatusCode)
	}
}

func TestContext_SendStatus_OverridesStagedStatus(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	resp, err := c.SetStatus(http.StatusAccepted).SendStatus(http.StatusTeapot, echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("SendStatus failed: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("StatusCode = %d, want 418", resp.StatusCode)
	}
}

func TestContext_Chaining_BuildsFullResponse(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)

	resp, err := c.AddHeader("X-Test", "1").SetStatus(http.StatusCreated).Send(echoOutput{Result: 42})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if len(resp.Headers) != 1 || resp.Headers["X-Test"] != "1" {
		t.Fatalf("Headers = %v", resp.Headers)
	}
	if resp.Body != `{"result":42}` {
		t.Fatalf("Body = %s", resp.Body)
	}
}

func TestContext_AddJSONHeader_EncodesValue(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	resp, err := c.AddJSONHeader("X-Meta", map[string]int{"v": 3}).Send(echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.Headers["X-Meta"] != `{"v":3}` {
		t.Fatalf("Headers = %v", resp.Headers)
	}
}

func TestContext_AddJSONHeader_FailureSurfacesAtSend(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	c.AddJSONHeader("X-Meta", make(chan int)).AddHeader("X-Other", "1")

	_, err := c.Send(echoOutput{Result: 1})
	if err == nil {
		t.Fatal("Expected deferred encode error")
	}
	if !codec.IsMarshalError(err) {
		t.Fatalf("Expected *codec.MarshalError, got %T", err)
	}
}

func TestContext_Headers_ReturnsCopy(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	c.AddHeader("X-Test", "1")

	h := c.Headers()
	h["X-Test"] = "mutated"

	if c.Headers()["X-Test"] != "1" {
		t.Fatal("Headers() must return a copy")
	}
}

func TestContext_SendTwice_ResponsesDoNotAlias(t *testing.T) {
	c := newEchoContext(t, `{"name":"a"}`)
	c.AddHeader("X-Test", "1")

	first, err := c.Send(echoOutput{Result: 1})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	c.AddHeader("X-Test", "2")
	second, err := c.Send(echoOutput{Result: 2})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if first.Headers["X-Test"] != "1" || second.Headers["X-Test"] != "2" {
		t.Fatalf("Responses alias the staged map: %v / %v", first.Headers, second.Headers)
	}
}
