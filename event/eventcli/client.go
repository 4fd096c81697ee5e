// Package eventcli dispatches typed batches to functions served by the
// event package, using asynchronous Lambda invocations.
package eventcli

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/aura-studio/gateway/codec"
)

// Client dispatches typed items to one deployed function.
type Client[I any] struct {
	*Options
}

// NewClient builds a Client. When no Lambda client is injected, one is
// constructed from the default AWS config; it panics if that config
// cannot be loaded.
func NewClient[I any](opts ...Option) *Client[I] {
	o := NewOptions(opts...)
	if o.LambdaClient == nil {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}
		o.LambdaClient = lambda.NewFromConfig(cfg)
	}
	return &Client[I]{Options: o}
}

// Send dispatches a single item as a one-element batch.
func (c *Client[I]) Send(ctx context.Context, item I) error {
	return c.SendBatch(ctx, []I{item})
}

// SendBatch dispatches items as one asynchronous invocation. A nil
// error means the platform accepted the batch, not that the function
// processed it.
func (c *Client[I]) SendBatch(ctx context.Context, items []I) error {
	payload, err := codec.Encode(items)
	if err != nil {
		return err
	}

	input := &lambda.InvokeInput{
		FunctionName:   aws.String(c.FunctionName),
		InvocationType: types.InvocationTypeEvent,
		Payload:        []byte(payload),
	}
	if c.Qualifier != "" {
		input.Qualifier = aws.String(c.Qualifier)
	}

	output, err := c.LambdaClient.Invoke(ctx, input)
	if err != nil {
		return fmt.Errorf("eventcli: invoke %s: %w", c.FunctionName, err)
	}
	if output.StatusCode != 202 {
		return fmt.Errorf("eventcli: invoke %s: unexpected status %d", c.FunctionName, output.StatusCode)
	}
	return nil
}
