package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON handler on stdout as the default logger. The
// Postgres audit handler joins the fanout later, once the DB is connected.
func Setup() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}
