package i

import "github.com/google/uuid"

// Logger is the logging surface services depend on.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)

	// WithRun returns a logger that tags every line with the run id.
	WithRun(id uuid.UUID) Logger
}
