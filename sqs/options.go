package sqs

import "github.com/mohae/deepcopy"

// Option mutates Options.
type Option interface {
	Apply(o *Options)
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*Options)

// Apply calls f.
func (f OptionFunc) Apply(o *Options) { f(o) }

// Options configures an sqs Engine.
type Options struct {
	// SQSClient overrides the AWS client used for replies.
	SQSClient SQSClient

	// ErrorSuspend aborts the batch at the first handler error.
	ErrorSuspend bool

	// PartialRetry reports failed records as batch item failures
	// instead of failing the whole batch.
	PartialRetry bool

	// ReplyMode treats bodies as Envelopes and sends handler results
	// back through the reply queue they name.
	ReplyMode bool

	// Validation runs codec.Validate on each decoded payload.
	Validation bool

	// DebugMode enables record logging.
	DebugMode bool
}

var defaultOptions = &Options{
	SQSClient:    nil,
	ErrorSuspend: false,
	PartialRetry: false,
	ReplyMode:    false,
	Validation:   false,
	DebugMode:    false,
}

// NewOptions builds Options from a deep copy of the defaults with opts
// applied in order.
func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	options.init(opts...)
	return options
}

func (o *Options) init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
}

// WithSQSClient injects the SQS client used for replies.
func WithSQSClient(client SQSClient) Option {
	return OptionFunc(func(o *Options) {
		o.SQSClient = client
	})
}

// WithErrorSuspend enables or disables abort-on-first-error.
func WithErrorSuspend(suspend bool) Option {
	return OptionFunc(func(o *Options) {
		o.ErrorSuspend = suspend
	})
}

// WithPartialRetry enables or disables partial batch failure
// reporting.
func WithPartialRetry(partial bool) Option {
	return OptionFunc(func(o *Options) {
		o.PartialRetry = partial
	})
}

// WithReplyMode enables or disables envelope decoding and replies.
func WithReplyMode(reply bool) Option {
	return OptionFunc(func(o *Options) {
		o.ReplyMode = reply
	})
}

// WithValidation enables or disables payload validation.
func WithValidation(validation bool) Option {
	return OptionFunc(func(o *Options) {
		o.Validation = validation
	})
}

// WithDebugMode enables or disables debug logging.
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}
