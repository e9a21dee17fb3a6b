package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/act3-ai/go-common/pkg/logger"
)

// level maps a verbosity count to a log level. Counts above 3 go below
// debug, enabling command output dumps.
func level(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	case verbosity == 3:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - slog.Level(4*(verbosity-3))
	}
}

// withLogger installs a text logger writing to w as the default logger and
// in the returned context.
func withLogger(ctx context.Context, w io.Writer, verbosity int) context.Context {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbosity)})
	log := slog.New(handler)
	slog.SetDefault(log)
	return logger.NewContext(ctx, log)
}
