package invoke

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/aura-studio/gateway/codec"
)

func TestEngine_Invoke_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("any addition round-trips through the engine", prop.ForAll(
		func(a, b int) bool {
			e := NewEngine(addHandler())
			payload, err := codec.Encode(addRequest{A: a, B: b})
			if err != nil {
				return false
			}
			out, err := e.Invoke(context.Background(), []byte(payload))
			if err != nil {
				return false
			}
			resp, err := codec.Decode[addResponse](string(out))
			if err != nil {
				return false
			}
			return resp.Sum == a+b
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("running state follows the last transition", prop.ForAll(
		func(transitions []bool) bool {
			e := NewEngine(addHandler())
			running := true
			for _, start := range transitions {
				if start {
					e.Start()
				} else {
					e.Stop()
				}
				running = start
			}
			if e.IsRunning() != running {
				return false
			}
			_, err := e.Invoke(context.Background(), []byte(`{"a":1,"b":2}`))
			if running {
				return err == nil
			}
			return err != nil
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
