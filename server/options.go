package server

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/aura-studio/gateway/local"
	"github.com/aura-studio/gateway/proxy"
)

// Option mutates Options.
type Option interface {
	Apply(o *Options)
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*Options)

// Apply calls f.
func (f OptionFunc) Apply(o *Options) { f(o) }

// Options configures Serve.
type Options struct {
	// Mode picks the serving mode. EnvMode overrides it when set.
	Mode Mode

	// Proxy options are handed to proxy.Serve in lambda mode.
	Proxy []proxy.Option

	// Local options are handed to local.Serve in local mode.
	Local []local.Option
}

var defaultOptions = &Options{
	Mode: ModeLambda,
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

// WithMode sets the serving mode. It panics on an unrecognized mode.
func WithMode(mode Mode) Option {
	return OptionFunc(func(o *Options) {
		switch mode {
		case ModeLambda, ModeLocal:
			o.Mode = mode
		default:
			panic(fmt.Errorf("server: unrecognized mode: %q", mode))
		}
	})
}

// WithProxyOptions appends options for lambda-mode serving.
func WithProxyOptions(opts ...proxy.Option) Option {
	return OptionFunc(func(o *Options) {
		o.Proxy = append(o.Proxy, opts...)
	})
}

// WithLocalOptions appends options for local-mode serving.
func WithLocalOptions(opts ...local.Option) Option {
	return OptionFunc(func(o *Options) {
		o.Local = append(o.Local, opts...)
	})
}
