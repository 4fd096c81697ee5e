package proxy

import (
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aura-studio/gateway/codec"
)

// DefaultStatus is the response status used when a handler never sets
// one.
const DefaultStatus = http.StatusOK

// ReceiveRequest decodes the event body into I without building a
// Context. Base64-encoded bodies are decoded first. Every failure is a
// *codec.UnmarshalError.
func ReceiveRequest[I any](event events.APIGatewayProxyRequest) (I, error) {
	body := event.Body
	if event.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			var zero I
			return zero, &codec.UnmarshalError{Data: body, Err: err}
		}
		body = string(raw)
	}
	return codec.Decode[I](body)
}

// SendResponse assembles a response in one shot. A zero status means
// DefaultStatus. The headers map is copied, never aliased, and nil
// headers produce an empty map in the response. Every encode failure
// is a *codec.MarshalError.
func SendResponse[O any](payload O, status int, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	body, err := codec.Encode(payload)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	if status == 0 {
		status = DefaultStatus
	}
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h,
		Body:       body,
	}, nil
}
