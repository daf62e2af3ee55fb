package types

// Logger is the structured logger used by groups, the basket draw and the
// assignment publisher.
//
// Compatible with zap.SugaredLogger; NewSlogLogger adapts log/slog. Fields are
// passed as key-value pairs such as "giver", "attempt" or "draw_id".
type Logger interface {
	// Debug logs a message at DebugLevel. The resolver traces every draw at this level.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel. Resolved draws and publishes are reported here.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel, e.g. an exhausted retry budget.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and calls os.Exit(1).
	// The library never calls it; it exists for zap compatibility.
	Fatal(msg string, keysAndValues ...any)
}
