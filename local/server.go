package local

import (
	"context"
	"net/http"
	"time"

	"github.com/aura-studio/gateway/proxy"
)

var (
	srv *http.Server

	// engine holds the lifecycle of the engine built by Serve.
	engine interface{ Stop() }
)

// Serve runs h as a local HTTP service on the configured address. It
// blocks until the server stops and returns nil after a clean Close.
func Serve[I, O any](h proxy.Handler[I, O], opts ...Option) error {
	e := NewEngine(h, opts...)
	engine = e
	srv = &http.Server{
		Addr:    e.Addr,
		Handler: e,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close stops the serving engine and shuts the HTTP server down,
// waiting up to five seconds for in-flight requests.
func Close() error {
	if engine != nil {
		engine.Stop()
	}
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
