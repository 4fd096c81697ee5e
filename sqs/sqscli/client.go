// Package sqscli calls functions served by the sqs package in reply
// mode, correlating requests and replies across a queue pair.
package sqscli

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"

	"github.com/aura-studio/gateway/codec"
	"github.com/aura-studio/gateway/sqs"
)

// Client sends typed requests to the request queue and resolves typed
// replies from the reply queue. One listener goroutine long-polls the
// reply queue and routes envelopes to waiting calls by correlation ID.
type Client[I, O any] struct {
	*Options
	pendingRequests sync.Map // correlation id -> chan sqs.Envelope
	stopChan        chan struct{}
	wg              sync.WaitGroup
}

// NewClient builds a Client and starts the reply listener when a reply
// queue is configured. When no SQS client is injected, one is
// constructed from the default AWS config; it panics if that config
// cannot be loaded.
func NewClient[I, O any](opts ...Option) *Client[I, O] {
	o := NewOptions(opts...)
	if o.SQSClient == nil {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}
		o.SQSClient = awssqs.NewFromConfig(cfg)
	}

	c := &Client[I, O]{
		Options:  o,
		stopChan: make(chan struct{}),
	}
	if c.ReplyQueueURL != "" {
		c.wg.Add(1)
		go c.listener()
	}
	return c
}

// Close stops the reply listener and waits for it to exit.
func (c *Client[I, O]) Close() {
	close(c.stopChan)
	c.wg.Wait()
}

func (c *Client[I, O]) listener() {
	defer c.wg.Done()
	for {
		select {
		case <-c.stopChan:
			return
		default:
			output, err := c.SQSClient.ReceiveMessage(context.Background(), &awssqs.ReceiveMessageInput{
				QueueUrl:            aws.String(c.ReplyQueueURL),
				MaxNumberOfMessages: 10,
				WaitTimeSeconds:     20,
			})
			if err != nil {
				time.Sleep(time.Second)
				continue
			}

			for _, msg := range output.Messages {
				c.handleIncomingMessage(msg)
				c.SQSClient.DeleteMessage(context.Background(), &awssqs.DeleteMessageInput{
					QueueUrl:      aws.String(c.ReplyQueueURL),
					ReceiptHandle: msg.ReceiptHandle,
				})
			}
		}
	}
}

// handleIncomingMessage routes one reply to the call waiting on its
// correlation ID. Undecodable and unclaimed replies are dropped.
func (c *Client[I, O]) handleIncomingMessage(msg types.Message) {
	if msg.Body == nil {
		return
	}
	env, err := codec.Decode[sqs.Envelope](*msg.Body)
	if err != nil {
		return
	}
	if ch, ok := c.pendingRequests.Load(env.CorrelationID); ok {
		ch.(chan sqs.Envelope) <- env
	}
}

// Call sends req through the request queue and blocks until the reply
// arrives, the timeout elapses, or ctx is done. The timeout comes from
// the context deadline when one is set, DefaultTimeout otherwise.
func (c *Client[I, O]) Call(ctx context.Context, req I) (O, error) {
	var out O
	if c.ReplyQueueURL == "" {
		return out, fmt.Errorf("sqscli: no reply queue configured")
	}

	payload, err := codec.Encode(req)
	if err != nil {
		return out, err
	}

	correlationID := uuid.New().String()
	body, err := codec.Encode(sqs.Envelope{
		CorrelationID: correlationID,
		ReplyQueue:    c.ReplyQueueURL,
		Payload:       json.RawMessage(payload),
	})
	if err != nil {
		return out, err
	}

	respChan := make(chan sqs.Envelope, 1)
	c.pendingRequests.Store(correlationID, respChan)
	defer c.pendingRequests.Delete(correlationID)

	if _, err := c.SQSClient.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(c.RequestQueueURL),
		MessageBody: aws.String(body),
	}); err != nil {
		return out, fmt.Errorf("sqscli: send request: %w", err)
	}

	timeout := c.DefaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	select {
	case env := <-respChan:
		return codec.Decode[O](string(env.Payload))
	case <-time.After(timeout):
		return out, fmt.Errorf("sqscli: request timeout")
	case <-ctx.Done():
		return out, ctx.Err()
	}
}

// CallAsync runs Call in a goroutine and hands the result to callback.
func (c *Client[I, O]) CallAsync(ctx context.Context, req I, callback func(O, error)) {
	go func() {
		out, err := c.Call(ctx, req)
		if callback != nil {
			callback(out, err)
		}
	}()
}
