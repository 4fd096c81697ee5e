package invoke

import (
	"github.com/mohae/deepcopy"
)

// Options configures an invoke Engine.
type Options struct {
	// DebugMode enables request/response logging.
	DebugMode bool

	// Validation runs codec.Validate on the decoded request before the
	// handler sees it.
	Validation bool
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
	DebugMode:  false,
	Validation: false,
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

// WithValidation enables or disables request validation.
func WithValidation(validation bool) Option {
	return OptionFunc(func(o *Options) {
		o.Validation = validation
	})
}
