package logging

// NullLogger discards everything. The unification core takes a Logger
// on every constructor, so tests and library callers that want a
// silent run inject this one instead of a ConsoleLogger.
type NullLogger struct{}

// NewNullLogger creates a NullLogger. The zero value works just as
// well; the constructor exists for symmetry with NewConsoleLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose discards the message.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info discards the message.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error discards the message.
func (l *NullLogger) Error(format string, args ...interface{}) {}
