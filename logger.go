package coomat

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger for structured logging across the module.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a logger with the given handler.
func NewLogger(handler slog.Handler) *Logger {
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger returns a logger that discards all records.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// LogCommit logs a commit of staged entries into a new structure.
func (l *Logger) LogCommit(entries int, numRows, numCols int, duration time.Duration) {
	l.Debug("committed entries",
		slog.Int("entries", entries),
		slog.Int("num_rows", numRows),
		slog.Int("num_cols", numCols),
		slog.Duration("duration", duration),
	)
}

// LogBatchInsert logs a bulk staging operation.
func (l *Logger) LogBatchInsert(entries int, duration time.Duration) {
	l.Debug("batch insert",
		slog.Int("entries", entries),
		slog.Duration("duration", duration),
	)
}

// LogApply logs a matrix-vector product.
func (l *Logger) LogApply(transpose, conjugate bool, duration time.Duration) {
	l.Debug("apply",
		slog.Bool("transpose", transpose),
		slog.Bool("conjugate", conjugate),
		slog.Duration("duration", duration),
	)
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(op, name string, entries int, duration time.Duration) {
	l.Info("snapshot",
		slog.String("op", op),
		slog.String("name", name),
		slog.Int("entries", entries),
		slog.Duration("duration", duration),
	)
}

// LogSolve logs a call into a solver backend.
func (l *Logger) LogSolve(op string, duration time.Duration, err error) {
	if err != nil {
		l.Warn("solve failed",
			slog.String("op", op),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return
	}
	l.Debug("solve",
		slog.String("op", op),
		slog.Duration("duration", duration),
	)
}

// LogReset logs a reset of both staged and committed state.
func (l *Logger) LogReset(discarded int) {
	l.Debug("reset", slog.Int("discarded", discarded))
}
