// Package server picks the serving mode for a typed handler: the
// Lambda runtime on platform, or a local HTTP server for development.
package server

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/aura-studio/gateway/local"
	"github.com/aura-studio/gateway/proxy"
)

// Mode names a serving mode.
type Mode string

const (
	// ModeLambda hands the handler to the Lambda runtime.
	ModeLambda Mode = "lambda"

	// ModeLocal serves the handler over local HTTP.
	ModeLocal Mode = "local"
)

// EnvMode is the environment variable that overrides the configured
// mode.
const EnvMode = "GATEWAY_MODE"

// Serve runs h in the resolved mode. A .env file is loaded first when
// present, then EnvMode overrides any configured mode. Lambda mode
// blocks for the lifetime of the process; local mode blocks until the
// server stops.
func Serve[I, O any](h proxy.Handler[I, O], opts ...Option) error {
	_ = godotenv.Load()

	o := NewOptions(opts...)

	switch mode := resolveMode(o); mode {
	case ModeLocal:
		return local.Serve(h, o.Local...)
	case ModeLambda:
		proxy.Serve(h, o.Proxy...)
		return nil
	default:
		return fmt.Errorf("server: unrecognized mode: %q", mode)
	}
}

// Close stops whichever mode started.
func Close() error {
	proxy.Close()
	return local.Close()
}

func resolveMode(o *Options) Mode {
	mode := o.Mode
	if env := os.Getenv(EnvMode); env != "" {
		mode = Mode(env)
	}
	if mode == "" {
		mode = ModeLambda
	}
	return mode
}
