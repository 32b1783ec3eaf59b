package app

import (
	"context"
	"io"
	"log/slog"

	"bootplan/internal/ctxlog"
)

// App encapsulates the planner's dependencies: the logger and the
// format-specific manifest loaders. Rendered output goes to the writer
// each operation receives; logging stays on the writer given here
// (stderr in the real binary) so stdout carries only the plan.
type App struct {
	logger *slog.Logger
}

// New constructs an App with a logger configured from the global CLI
// flags. logW is where log lines go, typically os.Stderr.
func New(logW io.Writer, logLevel, logFormat string) *App {
	return &App{logger: newLogger(logLevel, logFormat, logW)}
}

// Logger exposes the app's logger, mainly for tests.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// withLogger embeds the app's logger in the context so the loaders and
// deeper layers can log through ctxlog.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
