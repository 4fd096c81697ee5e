package sqscli

import (
	"time"

	"github.com/mohae/deepcopy"

	"github.com/aura-studio/gateway/sqs"
)

// Option mutates Options.
type Option interface {
	Apply(o *Options)
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*Options)

// Apply calls f.
func (f OptionFunc) Apply(o *Options) { f(o) }

// Options configures a Client.
type Options struct {
	// SQSClient overrides the AWS client. When nil, one is built from
	// the default AWS config.
	SQSClient sqs.SQSClient

	// RequestQueueURL is the queue the served engine consumes.
	RequestQueueURL string

	// ReplyQueueURL is the queue replies come back on. The listener
	// only starts when it is set.
	ReplyQueueURL string

	// DefaultTimeout bounds Call when the context has no deadline.
	DefaultTimeout time.Duration
}

var defaultOptions = &Options{
	DefaultTimeout: 30 * time.Second,
}

// NewOptions builds Options from a deep copy of the defaults with opts
// applied in order.
func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(options)
		}
	}
	return options
}

// WithSQSClient injects the SQS client.
func WithSQSClient(client sqs.SQSClient) Option {
	return OptionFunc(func(o *Options) {
		o.SQSClient = client
	})
}

// WithRequestQueueURL sets the queue requests are sent to.
func WithRequestQueueURL(url string) Option {
	return OptionFunc(func(o *Options) {
		o.RequestQueueURL = url
	})
}

// WithReplyQueueURL sets the queue replies are received on.
func WithReplyQueueURL(url string) Option {
	return OptionFunc(func(o *Options) {
		o.ReplyQueueURL = url
	})
}

// WithDefaultTimeout sets the fallback Call timeout.
func WithDefaultTimeout(timeout time.Duration) Option {
	return OptionFunc(func(o *Options) {
		o.DefaultTimeout = timeout
	})
}
