package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports publish and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnPublishStart(_ context.Context, filename string, traces int) {
	h.logger.Debug("publish started", "filename", filename, "traces", traces)
}

func (h *logHooks) OnPublishComplete(_ context.Context, filename, url string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("publish failed", "filename", filename, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("publish completed", "filename", filename, "url", url, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
