package logging

import (
	"context"
	"log/slog"
	"os"
)

type ctxLoggerKey struct {
	Key string
}

var (
	cKey    = ctxLoggerKey{Key: "logger"}
	sessKey = ctxLoggerKey{Key: "session_id"}
)

func GetLoggerFromContext(ctx context.Context) *slog.Logger {
	var l *slog.Logger

	logger := ctx.Value(cKey)
	if logger != nil {
		l = logger.(*slog.Logger)
	} else {
		// Default stdout logger
		l = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	// Always attach session ID from context if available
	sessionID := GetSessionIDFromCtx(ctx)
	if sessionID != "" {
		l = l.With(slog.String("session_id", sessionID))
	}

	return l
}

// Returns logger from context and attaches operation name
func GetLoggerFromContextWithOp(ctx context.Context, op string) *slog.Logger {
	l := GetLoggerFromContext(ctx)

	// Attach operation
	l = l.With(slog.String("op", op))

	return l
}

func MakeContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, cKey, logger)
	return ctx
}
