package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// No-op until Initialize so packages can log unconditionally
	Logger = zap.NewNop().Sugar()
}

// Options controls how Initialize builds the global logger.
type Options struct {
	// Verbosity is the -v flag count, see VerbosityToLevel
	Verbosity int
	// JSON selects zap's production JSON encoder
	JSON bool
	// Theme selects the console color palette (everforest, gruvbox)
	Theme string
	// Output defaults to stderr; stdout is reserved for the banner and table
	Output io.Writer
}

// Initialize sets up the global logger
func Initialize(opts Options) error {
	JSONOutput = opts.JSON

	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := VerbosityToLevel(opts.Verbosity)

	var zapLogger *zap.Logger
	if opts.JSON {
		// JSON structured output for machine consumption
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(out),
				level,
			),
		)
	} else {
		// Human-readable console output with minimal, calm formatting
		zapLogger = zap.New(
			zapcore.NewCore(
				newMinimalEncoder(),
				zapcore.AddSync(out),
				level,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
