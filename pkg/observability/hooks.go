// Package observability provides hooks for logging and metrics around trace
// generation, playback and rendering.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific backends. The CLI registers hooks at startup;
// library packages only ever call the registered hooks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    observability.SetPlaybackHooks(&myPlaybackHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generation().OnGenerateStart(ctx, "binary-search", params)
//	// ... generate ...
//	observability.Generation().OnGenerateComplete(ctx, "binary-search", len(steps), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from the algorithm catalog.
type GenerationHooks interface {
	// OnGenerateStart fires after parameters were merged with defaults.
	OnGenerateStart(ctx context.Context, algorithm string, params map[string]string)

	// OnGenerateComplete fires once per run. steps is zero when err is set.
	OnGenerateComplete(ctx context.Context, algorithm string, steps int, duration time.Duration, err error)
}

// =============================================================================
// Playback Hooks
// =============================================================================

// PlaybackHooks receives events from playback controllers. Controllers call
// these while holding their own lock; implementations must not call back
// into the controller.
type PlaybackHooks interface {
	// OnTransition records a state change.
	OnTransition(from, to string, index int)

	// OnTick records a timer tick. stale is true when the tick belonged to
	// a cancelled schedule and was ignored.
	OnTick(index int, stale bool)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the Graphviz renderer.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, kind string, format string)
	OnRenderComplete(ctx context.Context, kind string, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, string, map[string]string) {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}

// NoopPlaybackHooks is a no-op implementation of PlaybackHooks.
type NoopPlaybackHooks struct{}

func (NoopPlaybackHooks) OnTransition(string, string, int) {}
func (NoopPlaybackHooks) OnTick(int, bool)                 {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	playbackHooks   PlaybackHooks   = NoopPlaybackHooks{}
	renderHooks     RenderHooks     = NoopRenderHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetPlaybackHooks registers custom playback hooks.
// This should be called once at application startup.
func SetPlaybackHooks(h PlaybackHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		playbackHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Playback returns the registered playback hooks.
func Playback() PlaybackHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return playbackHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	playbackHooks = NoopPlaybackHooks{}
	renderHooks = NoopRenderHooks{}
}
