package event

import "github.com/mohae/deepcopy"

// Option mutates Options.
type Option interface {
	Apply(o *Options)
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*Options)

// Apply calls f.
func (f OptionFunc) Apply(o *Options) { f(o) }

// RunMode selects how item failures drive the batch result.
type RunMode string

const (
	// RunModeStrict stops at the first failure and returns it.
	RunModeStrict RunMode = "strict"
	// RunModePartial processes every item and reports success even
	// when some failed.
	RunModePartial RunMode = "partial"
	// RunModeBatch fails the whole batch at the first failure.
	RunModeBatch RunMode = "batch"
	// RunModeReentrant processes every item and returns the last
	// failure, so the platform redelivers the batch.
	RunModeReentrant RunMode = "reentrant"
)

// Options configures an event Engine.
type Options struct {
	RunMode    RunMode
	DebugMode  bool
	Validation bool
}

var defaultOptions = &Options{
	RunMode:    RunModeBatch,
	DebugMode:  false,
	Validation: false,
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

// WithRunMode sets the run mode. It panics on an unrecognized mode.
func WithRunMode(mode RunMode) Option {
	return OptionFunc(func(o *Options) {
		switch mode {
		case RunModeStrict, RunModePartial, RunModeBatch, RunModeReentrant:
			o.RunMode = mode
		default:
			panic("event: unrecognized run mode: " + string(mode))
		}
	})
}

// WithDebugMode enables or disables debug logging.
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}

// WithValidation enables or disables per-item validation.
func WithValidation(validation bool) Option {
	return OptionFunc(func(o *Options) {
		o.Validation = validation
	})
}
