package sqscli

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/aura-studio/gateway/codec"
	"github.com/aura-studio/gateway/sqs"
)

type greetRequest struct {
	Name string `json:"name"`
}

type greetReply struct {
	Greeting string `json:"greeting"`
}

type mockSQSClient struct {
	sqs.SQSClient
	mu               sync.Mutex
	sentMessages     []*awssqs.SendMessageInput
	receivedMessages []*awssqs.ReceiveMessageInput
	deletedMessages  []*awssqs.DeleteMessageInput
	responseChan     chan types.Message
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentMessages = append(m.sentMessages, params)
	return &awssqs.SendMessageOutput{}, nil
}

func (m *mockSQSClient) ReceiveMessage(ctx context.Context, params *awssqs.ReceiveMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.ReceiveMessageOutput, error) {
	m.mu.Lock()
	m.receivedMessages = append(m.receivedMessages, params)
	m.mu.Unlock()

	select {
	case msg := <-m.responseChan:
		return &awssqs.ReceiveMessageOutput{
			Messages: []types.Message{msg},
		}, nil
	case <-time.After(100 * time.Millisecond):
		return &awssqs.ReceiveMessageOutput{}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *mockSQSClient) DeleteMessage(ctx context.Context, params *awssqs.DeleteMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.DeleteMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedMessages = append(m.deletedMessages, params)
	return &awssqs.DeleteMessageOutput{}, nil
}

// greetPeer answers the first request the client sends, echoing its
// correlation ID the way a served engine in reply mode would.
func greetPeer(mock *mockSQSClient) {
	for {
		mock.mu.Lock()
		if len(mock.sentMessages) > 0 {
			sent := mock.sentMessages[0]
			mock.mu.Unlock()

			env, err := codec.Decode[sqs.Envelope](*sent.MessageBody)
			if err != nil {
				return
			}
			req, err := codec.Decode[greetRequest](string(env.Payload))
			if err != nil {
				return
			}
			payload, _ := codec.Encode(greetReply{Greeting: "hello " + req.Name})
			reply, _ := codec.Encode(sqs.Envelope{
				CorrelationID: env.CorrelationID,
				Payload:       json.RawMessage(payload),
			})
			mock.responseChan <- types.Message{
				Body:          aws.String(reply),
				ReceiptHandle: aws.String("handle-1"),
			}
			return
		}
		mock.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestClient_Call_RoundTrip(t *testing.T) {
	mock := &mockSQSClient{responseChan: make(chan types.Message, 1)}
	client := NewClient[greetRequest, greetReply](
		WithSQSClient(mock),
		WithRequestQueueURL("req-queue"),
		WithReplyQueueURL("reply-queue"),
		WithDefaultTimeout(2*time.Second),
	)
	defer client.Close()

	go greetPeer(mock)

	reply, err := client.Call(context.Background(), greetRequest{Name: "bob"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if reply.Greeting != "hello bob" {
		t.Fatalf("expected greeting %q, got %q", "hello bob", reply.Greeting)
	}

	mock.mu.Lock()
	defer mock.mu.Unlock()
	if len(mock.sentMessages) != 1 {
		t.Fatalf("expected 1 sent message, got %d", len(mock.sentMessages))
	}
	if got := aws.ToString(mock.sentMessages[0].QueueUrl); got != "req-queue" {
		t.Errorf("request sent to %q, want %q", got, "req-queue")
	}
	env, err := codec.Decode[sqs.Envelope](*mock.sentMessages[0].MessageBody)
	if err != nil {
		t.Fatalf("decode sent envelope: %v", err)
	}
	if env.CorrelationID == "" {
		t.Error("sent envelope has no correlation id")
	}
	if env.ReplyQueue != "reply-queue" {
		t.Errorf("sent envelope names reply queue %q, want %q", env.ReplyQueue, "reply-queue")
	}
	if len(mock.receivedMessages) == 0 {
		t.Fatal("listener never polled the reply queue")
	}
	if got := aws.ToString(mock.receivedMessages[0].QueueUrl); got != "reply-queue" {
		t.Errorf("listener polled %q, want %q", got, "reply-queue")
	}
	if len(mock.deletedMessages) != 1 {
		t.Fatalf("expected 1 deleted message, got %d", len(mock.deletedMessages))
	}
	if got := aws.ToString(mock.deletedMessages[0].ReceiptHandle); got != "handle-1" {
		t.Errorf("deleted receipt handle %q, want %q", got, "handle-1")
	}
}

func TestClient_Call_Timeout(t *testing.T) {
	mock := &mockSQSClient{responseChan: make(chan types.Message, 1)}
	client := NewClient[greetRequest, greetReply](
		WithSQSClient(mock),
		WithRequestQueueURL("req-queue"),
		WithReplyQueueURL("reply-queue"),
		WithDefaultTimeout(100*time.Millisecond),
	)
	defer client.Close()

	_, err := client.Call(context.Background(), greetRequest{Name: "bob"})
	if err == nil || !strings.Contains(err.Error(), "request timeout") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestClient_Call_ContextCanceled(t *testing.T) {
	mock := &mockSQSClient{responseChan: make(chan types.Message, 1)}
	client := NewClient[greetRequest, greetReply](
		WithSQSClient(mock),
		WithRequestQueueURL("req-queue"),
		WithReplyQueueURL("reply-queue"),
		WithDefaultTimeout(time.Minute),
	)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Call(ctx, greetRequest{Name: "bob"})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_Call_RequiresReplyQueue(t *testing.T) {
	mock := &mockSQSClient{responseChan: make(chan types.Message, 1)}
	client := NewClient[greetRequest, greetReply](
		WithSQSClient(mock),
		WithRequestQueueURL("req-queue"),
	)
	defer client.Close()

	_, err := client.Call(context.Background(), greetRequest{Name: "bob"})
	if err == nil || !strings.Contains(err.Error(), "no reply queue") {
		t.Fatalf("expected reply queue error, got %v", err)
	}
	mock.mu.Lock()
	defer mock.mu.Unlock()
	if len(mock.sentMessages) != 0 {
		t.Fatalf("expected no sends, got %d", len(mock.sentMessages))
	}
}

func TestClient_CallAsync(t *testing.T) {
	mock := &mockSQSClient{responseChan: make(chan types.Message, 1)}
	client := NewClient[greetRequest, greetReply](
		WithSQSClient(mock),
		WithRequestQueueURL("req-queue"),
		WithReplyQueueURL("reply-queue"),
		WithDefaultTimeout(2*time.Second),
	)
	defer client.Close()

	go greetPeer(mock)

	done := make(chan struct{})
	var (
		reply   greetReply
		callErr error
	)
	client.CallAsync(context.Background(), greetRequest{Name: "ada"}, func(out greetReply, err error) {
		reply = out
		callErr = err
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never ran")
	}
	if callErr != nil {
		t.Fatalf("CallAsync: %v", callErr)
	}
	if reply.Greeting != "hello ada" {
		t.Fatalf("expected greeting %q, got %q", "hello ada", reply.Greeting)
	}
}
