// Package invokecli calls typed functions served by the invoke package
// through the Lambda Invoke API.
package invokecli

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/tidwall/gjson"

	"github.com/aura-studio/gateway/codec"
)

// FunctionError is the typed form of a Lambda function error: the
// remote handler (or its runtime) failed and the platform reported it
// out of band of the payload.
type FunctionError struct {
	Type    string
	Message string
}

func (e *FunctionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("invokecli: function error: %s", e.Message)
	}
	return fmt.Sprintf("invokecli: function error %s: %s", e.Type, e.Message)
}

// Client invokes one deployed typed function synchronously.
type Client[I, O any] struct {
	*Options
}

// NewClient builds a Client. When no Lambda client is injected, one is
// constructed from the default AWS config; it panics if that config
// cannot be loaded.
func NewClient[I, O any](opts ...Option) *Client[I, O] {
	o := NewOptions(opts...)
	if o.LambdaClient == nil {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}
		o.LambdaClient = lambda.NewFromConfig(cfg)
	}
	return &Client[I, O]{Options: o}
}

// Call invokes the function with req and decodes its response.
// Function errors come back as *FunctionError; payload decode failures
// as *codec.UnmarshalError.
func (c *Client[I, O]) Call(ctx context.Context, req I) (O, error) {
	var zero O

	payload, err := codec.Encode(req)
	if err != nil {
		return zero, err
	}

	if _, ok := ctx.Deadline(); !ok && c.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.DefaultTimeout)
		defer cancel()
	}

	input := &lambda.InvokeInput{
		FunctionName:   aws.String(c.FunctionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        []byte(payload),
	}
	if c.Qualifier != "" {
		input.Qualifier = aws.String(c.Qualifier)
	}

	output, err := c.LambdaClient.Invoke(ctx, input)
	if err != nil {
		return zero, fmt.Errorf("invokecli: invoke %s: %w", c.FunctionName, err)
	}

	if output.FunctionError != nil {
		return zero, parseFunctionError(*output.FunctionError, output.Payload)
	}

	return codec.Decode[O](string(output.Payload))
}

// CallAsync runs Call in a goroutine and hands the result to callback.
func (c *Client[I, O]) CallAsync(ctx context.Context, req I, callback func(O, error)) {
	go func() {
		resp, err := c.Call(ctx, req)
		if callback != nil {
			callback(resp, err)
		}
	}()
}

// parseFunctionError extracts errorType/errorMessage from the error
// payload the platform returns alongside a FunctionError marker.
func parseFunctionError(kind string, payload []byte) *FunctionError {
	fe := &FunctionError{Type: kind}
	body := string(payload)
	if msg := gjson.Get(body, "errorMessage"); msg.Exists() {
		fe.Message = msg.String()
	} else {
		fe.Message = body
	}
	if typ := gjson.Get(body, "errorType"); typ.Exists() && typ.String() != "" {
		fe.Type = typ.String()
	}
	return fe
}
