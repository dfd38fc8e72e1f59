package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	min   slog.Level
	count int
}

func (h *countingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *countingHandler) Handle(context.Context, slog.Record) error {
	h.count++
	return nil
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

func TestFanoutRoutesByLevel(t *testing.T) {
	all := &countingHandler{min: slog.LevelInfo}
	errorsOnly := &countingHandler{min: slog.LevelError}
	logger := slog.New(NewFanout(all, errorsOnly))

	logger.Info("served request")
	logger.Error("request failed")

	require.Equal(t, 2, all.count)
	require.Equal(t, 1, errorsOnly.count)
}
