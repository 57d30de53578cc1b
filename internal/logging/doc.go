// Package logging provides concrete implementations of the
// tkkunify.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr
//   - NullLogger: discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
