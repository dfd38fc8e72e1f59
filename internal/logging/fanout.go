package logging

import (
	"context"
	"log/slog"
)

// FanoutHandler forwards each record to every target that accepts its level.
type FanoutHandler struct {
	targets []slog.Handler
}

func NewFanout(targets ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{targets: targets}
}

func (f *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers to all interested targets; the first error is reported
// after every target has seen the record.
func (f *FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range f.targets {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(f.targets))
	for i, h := range f.targets {
		targets[i] = h.WithAttrs(attrs)
	}
	return &FanoutHandler{targets: targets}
}

func (f *FanoutHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(f.targets))
	for i, h := range f.targets {
		targets[i] = h.WithGroup(name)
	}
	return &FanoutHandler{targets: targets}
}
