package proxy

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aura-studio/gateway/codec"
)

func TestReceiveRequest_DecodesBody(t *testing.T) {
	in, err := ReceiveRequest[echoInput](proxyEvent(`{"name":"a"}`))
	if err != nil {
		t.Fatalf("ReceiveRequest failed: %v", err)
	}
	if in.Name != "a" {
		t.Fatalf("ReceiveRequest produced %+v", in)
	}
}

func TestReceiveRequest_Base64Body(t *testing.T) {
	event := proxyEvent(base64.StdEncoding.EncodeToString([]byte(`{"name":"b64"}`)))
	event.IsBase64Encoded = true

	in, err := ReceiveRequest[echoInput](event)
	if err != nil {
		t.Fatalf("ReceiveRequest failed: %v", err)
	}
	if in.Name != "b64" {
		t.Fatalf("ReceiveRequest produced %+v", in)
	}
}

func TestReceiveRequest_InvalidBase64_Fails(t *testing.T) {
	event := proxyEvent("%%not-base64%%")
	event.IsBase64Encoded = true

	_, err := ReceiveRequest[echoInput](event)
	if !codec.IsUnmarshalError(err) {
		t.Fatalf("Expected *codec.UnmarshalError, got %v", err)
	}
}

func TestSendResponse_Defaults(t *testing.T) {
	resp, err := SendResponse(echoOutput{Result: 7}, 0, nil)
	if err != nil {
		t.Fatalf("SendResponse failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Headers == nil || len(resp.Headers) != 0 {
		t.Fatalf("Headers = %v, want empty non-nil map", resp.Headers)
	}
	if resp.Body != `{"result":7}` {
		t.Fatalf("Body = %s", resp.Body)
	}
}

func TestSendResponse_CopiesHeaders(t *testing.T) {
	headers := map[string]string{"X-Test": "1"}
	resp, err := SendResponse(echoOutput{Result: 7}, http.StatusCreated, headers)
	if err != nil {
		t.Fatalf("SendResponse failed: %v", err)
	}

	headers["X-Test"] = "mutated"
	if resp.Headers["X-Test"] != "1" {
		t.Fatal("Response headers alias the input map")
	}
}

func TestSendResponse_EncodeFailure(t *testing.T) {
	_, err := SendResponse(make(chan int), http.StatusOK, nil)
	if !codec.IsMarshalError(err) {
		t.Fatalf("Expected *codec.MarshalError, got %v", err)
	}
}
