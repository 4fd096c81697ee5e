package invokecli

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/mohae/deepcopy"
)

// LambdaClient is the Lambda API subset the client needs. The AWS SDK
// client satisfies it; tests inject fakes.
type LambdaClient interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput,
		optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Options configures a Client.
type Options struct {
	LambdaClient   LambdaClient
	FunctionName   string
	Qualifier      string
	DefaultTimeout time.Duration
}

// Option mutates Options.
type Option interface {
	Apply(o *Options)
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*Options)

// Apply calls f.
func (f OptionFunc) Apply(o *Options) { f(o) }

var defaultOptions = &Options{
	DefaultTimeout: 30 * time.Second,
}

// NewOptions builds Options from a deep copy of the defaults with opts
// applied in order.
func NewOptions(opts ...Option) *Options {
	o := deepcopy.Copy(defaultOptions).(*Options)
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
	return o
}

// WithLambdaClient injects the Lambda client to invoke through.
func WithLambdaClient(client LambdaClient) Option {
	return OptionFunc(func(o *Options) {
		o.LambdaClient = client
	})
}

// WithFunctionName sets the target function.
func WithFunctionName(name string) Option {
	return OptionFunc(func(o *Options) {
		o.FunctionName = name
	})
}

// WithQualifier pins a function version or alias.
func WithQualifier(qualifier string) Option {
	return OptionFunc(func(o *Options) {
		o.Qualifier = qualifier
	})
}

// WithDefaultTimeout bounds calls whose context has no deadline.
func WithDefaultTimeout(timeout time.Duration) Option {
	return OptionFunc(func(o *Options) {
		o.DefaultTimeout = timeout
	})
}
