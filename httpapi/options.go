package httpapi

import (
	"github.com/mohae/deepcopy"
)

// Options configures an httpapi Engine.
type Options struct {
	// DebugMode enables request/response logging.
	DebugMode bool

	// Validation runs codec.Validate on the decoded body before the
	// handler sees it.
	Validation bool

	// DefaultHeaders are staged on every Context before Execute runs,
	// so handler writes win.
	DefaultHeaders map[string]string
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
	DebugMode:      false,
	Validation:     false,
	DefaultHeaders: map[string]string{},
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

// WithDebugMode enables or disables debug logging.
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}

// WithValidation enables or disables body validation.
func WithValidation(validation bool) Option {
	return OptionFunc(func(o *Options) {
		o.Validation = validation
	})
}

// WithDefaultHeader stages one header on every context.
func WithDefaultHeader(name, value string) Option {
	return OptionFunc(func(o *Options) {
		if o.DefaultHeaders == nil {
			o.DefaultHeaders = make(map[string]string)
		}
		o.DefaultHeaders[name] = value
	})
}

// WithDefaultHeaders merges headers into the default header set.
func WithDefaultHeaders(headers map[string]string) Option {
	return OptionFunc(func(o *Options) {
		if o.DefaultHeaders == nil {
			o.DefaultHeaders = make(map[string]string)
		}
		for name, value := range headers {
			o.DefaultHeaders[name] = value
		}
	})
}
