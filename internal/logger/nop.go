package logger

// NoOpLogger discards every log call. Tests and callers that pass a nil
// logger get one of these instead of nil checks at every call site.
type NoOpLogger struct{}

// NewNop returns a logger that discards all output.
func NewNop() Logger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(msg string, fields ...Field) {}
func (l *NoOpLogger) Info(msg string, fields ...Field)  {}
func (l *NoOpLogger) Warn(msg string, fields ...Field)  {}
func (l *NoOpLogger) Error(msg string, fields ...Field) {}

// Fatal discards the message and, unlike the zap logger, does not exit.
func (l *NoOpLogger) Fatal(msg string, fields ...Field) {}

// With returns the receiver; fields are dropped.
func (l *NoOpLogger) With(fields ...Field) Logger {
	return l
}

func (l *NoOpLogger) Sync() error {
	return nil
}
