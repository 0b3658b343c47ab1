// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message with optional key/value attributes.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a recoverable problem with optional key/value attributes.
	Warn(msg string, args ...any)
	// Error logs an error and its cause chain.
	Error(err error)
}
