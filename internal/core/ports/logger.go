package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message, emitted only when debug is enabled.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error.
	Error(err error)
	// DebugEnabled reports whether debug messages are emitted. Callers use it
	// to skip assembling expensive diagnostics.
	DebugEnabled() bool
	// SetDebug toggles debug-level output.
	SetDebug(enabled bool)
}
