package sqs

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// engine holds the lifecycle of the engine built by Serve.
var engine interface{ Stop() }

// Serve builds an Engine for h and hands its Invoke to the Lambda
// runtime. It blocks for the lifetime of the process.
func Serve[I, O any](h Handler[I, O], opts ...Option) {
	e := NewEngine(h, opts...)
	engine = e
	lambda.Start(e.Invoke)
}

// Close stops the serving engine.
func Close() {
	if engine != nil {
		engine.Stop()
	}
}
