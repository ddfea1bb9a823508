package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	FieldDurationMS = "duration_ms"

	FieldError = "error"

	FieldCount = "count"
	FieldSize  = "size"

	FieldPath   = "path"
	FieldFormat = "format"
	FieldStatus = "status"
	FieldSource = "source"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("jobs.watch"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
