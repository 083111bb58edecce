package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerationHooks{}
	g.OnGenerateStart(ctx, "bfs", map[string]string{"start": "A"})
	g.OnGenerateComplete(ctx, "bfs", 12, time.Millisecond, nil)

	p := NoopPlaybackHooks{}
	p.OnTransition("ready", "playing", 0)
	p.OnTick(3, true)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "graph", "svg")
	r.OnRenderComplete(ctx, "graph", "svg", 2048, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Playback().(NoopPlaybackHooks); !ok {
		t.Error("Playback() should return NoopPlaybackHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	gen := &testGenerationHooks{}
	SetGenerationHooks(gen)
	if Generation() != gen {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	play := &testPlaybackHooks{}
	SetPlaybackHooks(play)
	if Playback() != play {
		t.Error("SetPlaybackHooks should set custom hooks")
	}

	ren := &testRenderHooks{}
	SetRenderHooks(ren)
	if Render() != ren {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// nil must not replace registered hooks
	SetGenerationHooks(nil)
	if Generation() != gen {
		t.Error("SetGenerationHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Playback().(NoopPlaybackHooks); !ok {
		t.Error("Reset() should restore NoopPlaybackHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	gen := &testGenerationHooks{}
	SetGenerationHooks(gen)

	Generation().OnGenerateStart(context.Background(), "gcd", nil)
	Generation().OnGenerateComplete(context.Background(), "gcd", 9, time.Millisecond, nil)

	if gen.started != 1 || gen.completed != 1 || gen.lastSteps != 9 {
		t.Errorf("got started=%d completed=%d steps=%d", gen.started, gen.completed, gen.lastSteps)
	}
}

type testGenerationHooks struct {
	NoopGenerationHooks
	started, completed, lastSteps int
}

func (h *testGenerationHooks) OnGenerateStart(context.Context, string, map[string]string) {
	h.started++
}

func (h *testGenerationHooks) OnGenerateComplete(_ context.Context, _ string, steps int, _ time.Duration, _ error) {
	h.completed++
	h.lastSteps = steps
}

type testPlaybackHooks struct{ NoopPlaybackHooks }

type testRenderHooks struct{ NoopRenderHooks }
