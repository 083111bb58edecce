package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algotrace/pkg/observability"
)

// logHooks reports generation, playback and render events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetGenerationHooks(h)
	observability.SetPlaybackHooks(h)
	observability.SetRenderHooks(h)
}

func (h logHooks) OnGenerateStart(_ context.Context, alg string, params map[string]string) {
	h.logger.Debug("generating", "algorithm", alg, "params", params)
}

func (h logHooks) OnGenerateComplete(_ context.Context, alg string, steps int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generation failed", "algorithm", alg, "err", err)
		return
	}
	h.logger.Debug("generated", "algorithm", alg, "steps", steps, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnTransition(from, to string, index int) {
	h.logger.Debug("playback", "from", from, "to", to, "index", index)
}

func (h logHooks) OnTick(index int, stale bool) {
	if stale {
		h.logger.Debug("stale tick ignored", "index", index)
	}
}

func (h logHooks) OnRenderStart(_ context.Context, kind, format string) {
	h.logger.Debug("rendering", "kind", kind, "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, kind, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "kind", kind, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "kind", kind, "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}
