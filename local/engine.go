// Package local runs typed handlers as a plain HTTP service for
// development, synthesizing the gateway events they would receive on
// platform.
package local

import (
	"github.com/gin-gonic/gin"

	"github.com/aura-studio/gateway/proxy"
)

// Engine serves one typed handler over HTTP. A catch-all route
// synthesizes an API Gateway event from each live request and runs it
// through a proxy engine.
type Engine[I, O any] struct {
	*Options
	*gin.Engine
	proxy *proxy.Engine[I, O]
}

// NewEngine builds a local Engine around h. Gin runs in release mode
// unless debug mode is on.
func NewEngine[I, O any](h proxy.Handler[I, O], opts ...Option) *Engine[I, O] {
	o := NewOptions(opts...)

	if !o.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	e := &Engine[I, O]{
		Options: o,
		Engine:  gin.New(),
		proxy:   proxy.NewEngine(h, o.ProxyOptions...),
	}

	e.Use(requestLogger(), gin.Recovery())
	if e.CorsMode {
		e.Use(cors())
	}
	e.Any("/*path", e.dispatch)

	return e
}

// Stop makes the wrapped proxy engine refuse further events.
func (e *Engine[I, O]) Stop() {
	e.proxy.Stop()
}
