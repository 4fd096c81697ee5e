package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	events "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/aura-studio/gateway/codec"
)

// SQSClient is the SQS API subset the engine and client need. The AWS
// SDK client satisfies it; tests inject fakes.
type SQSClient interface {
	SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *awssqs.ReceiveMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *awssqs.DeleteMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.DeleteMessageOutput, error)
}

// Engine runs one typed Handler behind an SQS event source mapping.
// Failed records either fail the whole batch or surface as partial
// batch failures, depending on the options.
type Engine[I, O any] struct {
	*Options
	handler   Handler[I, O]
	running   atomic.Int32
	sqsClient SQSClient
}

// NewEngine creates an Engine for h. When reply mode is on and no
// client is injected, one is constructed from the default AWS config;
// it panics if that config cannot be loaded.
func NewEngine[I, O any](h Handler[I, O], opts ...Option) *Engine[I, O] {
	e := &Engine[I, O]{
		Options: NewOptions(opts...),
		handler: h,
	}
	if e.Options.SQSClient != nil {
		e.sqsClient = e.Options.SQSClient
	} else if e.Options.ReplyMode {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}
		e.sqsClient = awssqs.NewFromConfig(cfg)
	}
	e.running.Store(1)
	return e
}

// Start allows the engine to accept records.
func (e *Engine[I, O]) Start() {
	e.running.Store(1)
}

// Stop makes the engine fail records instead of processing them.
func (e *Engine[I, O]) Stop() {
	e.running.Store(0)
}

// IsRunning reports whether the engine accepts records.
func (e *Engine[I, O]) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke handles one batch of records. With PartialRetry the response
// lists failed records and the error stays nil; otherwise any failure
// fails the whole batch. With ErrorSuspend the first handler error
// aborts the batch and is returned as is.
func (e *Engine[I, O]) Invoke(ctx context.Context, ev events.SQSEvent) (events.SQSEventResponse, error) {
	resp, err := e.handleRecords(ctx, ev)
	if err != nil {
		return events.SQSEventResponse{}, err
	}
	if e.PartialRetry {
		return resp, nil
	}
	if len(resp.BatchItemFailures) > 0 {
		return events.SQSEventResponse{}, fmt.Errorf("sqs: batch item failures: %d", len(resp.BatchItemFailures))
	}
	return events.SQSEventResponse{}, nil
}

func (e *Engine[I, O]) handleRecords(ctx context.Context, ev events.SQSEvent) (resp events.SQSEventResponse, err error) {
	for _, record := range ev.Records {
		if !e.IsRunning() {
			if e.DebugMode {
				log.Printf("[SQS] Engine stopped, message %s failed", record.MessageId)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}

		m, err := e.decodeRecord(record)
		if err != nil {
			if e.DebugMode {
				log.Printf("[SQS] Decode message %s error: %v", record.MessageId, err)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}

		if e.DebugMode {
			log.Printf("[SQS] Request: %s %s", record.MessageId, record.Body)
		}

		out, err := e.handler.Execute(ctx, m)
		if err != nil {
			if e.ErrorSuspend {
				return resp, err
			}
			if e.DebugMode {
				log.Printf("[SQS] Handler message %s error: %v", record.MessageId, err)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}

		if !e.ReplyMode || m.ReplyQueue == "" {
			continue
		}
		if err := e.reply(ctx, m, out); err != nil {
			if e.DebugMode {
				log.Printf("[SQS] Reply for message %s error: %v", record.MessageId, err)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}
	}
	return resp, nil
}

// decodeRecord builds the typed Message for one record. In reply mode
// the body is an Envelope wrapping the payload document.
func (e *Engine[I, O]) decodeRecord(record events.SQSMessage) (*Message[I], error) {
	m := &Message[I]{Record: record}

	body := record.Body
	if e.ReplyMode {
		env, err := codec.Decode[Envelope](body)
		if err != nil {
			return nil, err
		}
		m.CorrelationID = env.CorrelationID
		m.ReplyQueue = env.ReplyQueue
		body = string(env.Payload)
	}

	v, err := codec.Decode[I](body)
	if err != nil {
		return nil, err
	}
	if e.Validation {
		if err := codec.Validate(v); err != nil {
			return nil, err
		}
	}
	m.Body = v
	return m, nil
}

// reply sends the handler result back through the message's reply
// queue, wrapped in an Envelope carrying the request's correlation ID.
func (e *Engine[I, O]) reply(ctx context.Context, m *Message[I], out O) error {
	if m.CorrelationID == "" {
		return fmt.Errorf("sqs: reply requested without correlation id")
	}
	if e.sqsClient == nil {
		return fmt.Errorf("sqs: no client configured for replies")
	}

	payload, err := codec.Encode(out)
	if err != nil {
		return err
	}
	body, err := codec.Encode(Envelope{
		CorrelationID: m.CorrelationID,
		Payload:       json.RawMessage(payload),
	})
	if err != nil {
		return err
	}

	if _, err := e.sqsClient.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(m.ReplyQueue),
		MessageBody: aws.String(body),
	}); err != nil {
		return fmt.Errorf("sqs: send reply: %w", err)
	}
	return nil
}
