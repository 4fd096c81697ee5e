package sqs

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Message wraps one queue record with its payload decoded into I.
type Message[I any] struct {
	// Record is the record as delivered by the platform. The library
	// never modifies it.
	Record events.SQSMessage

	// Body is the decoded payload, fixed at construction.
	Body I

	// CorrelationID and ReplyQueue carry envelope metadata when the
	// engine runs in reply mode; both are empty otherwise.
	CorrelationID string
	ReplyQueue    string
}

// Envelope is the reply-mode wire format: a routable JSON wrapper
// around the payload document.
type Envelope struct {
	CorrelationID string          `json:"correlation_id"`
	ReplyQueue    string          `json:"reply_queue,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}
