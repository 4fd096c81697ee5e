package local

import (
	"github.com/mohae/deepcopy"

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

// Options configures a local Engine.
type Options struct {
	// Addr is the listen address used by Serve.
	Addr string

	// DebugMode keeps gin in debug mode and honors X-Gateway-Debug
	// report requests.
	DebugMode bool

	// CorsMode opens the engine to cross-origin callers.
	CorsMode bool

	// ProxyOptions configure the wrapped proxy engine.
	ProxyOptions []proxy.Option
}

var defaultOptions = &Options{
	Addr:      ":8080",
	DebugMode: false,
	CorsMode:  false,
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

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return OptionFunc(func(o *Options) {
		o.Addr = addr
	})
}

// WithDebugMode enables or disables debug mode.
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}

// WithCorsMode enables or disables the CORS middleware.
func WithCorsMode(cors bool) Option {
	return OptionFunc(func(o *Options) {
		o.CorsMode = cors
	})
}

// WithProxyOptions appends options for the wrapped proxy engine.
func WithProxyOptions(opts ...proxy.Option) Option {
	return OptionFunc(func(o *Options) {
		o.ProxyOptions = append(o.ProxyOptions, opts...)
	})
}
