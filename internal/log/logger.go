package log

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Loggerer is the logging interface used across the application
type Loggerer interface {
	Error(err error, message string)
	Info(message string)
	Warn(message string)
	Debug(message string)
}

// Logger is a zerolog backed Loggerer
type Logger struct {
	logger zerolog.Logger
}

var _ Loggerer = &Logger{}

type loggerKey string

// LoggerKey is the key for the logger in the context
const LoggerKey loggerKey = "logger"

// CorrelationIDKey is the field and metadata key carrying the request correlation id
const CorrelationIDKey = "correlation_id"

// NewLogger wraps a zerolog logger
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Error logs an error with its message
func (logger *Logger) Error(err error, message string) {
	logger.logger.Error().Err(err).Msg(message)
}

// Info logs an info message
func (logger *Logger) Info(message string) {
	logger.logger.Info().Msg(message)
}

// Warn logs a warning
func (logger *Logger) Warn(message string) {
	logger.logger.Warn().Msg(message)
}

// Debug logs a debug message
func (logger *Logger) Debug(message string) {
	logger.logger.Debug().Msg(message)
}

// AddLoggerToContext returns a copy of ctx carrying the logger
func AddLoggerToContext(ctx context.Context, logger Loggerer) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// GetLoggerFromContext returns the request logger stored in ctx
func GetLoggerFromContext(ctx context.Context) (Loggerer, error) {
	logger, ok := ctx.Value(LoggerKey).(Loggerer)
	if !ok || logger == nil {
		return nil, errors.New("Logger not found in context")
	}
	return logger, nil
}

// LogFactoryer creates loggers
type LogFactoryer interface {
	NewLogger() Loggerer
	NewLoggerWithCorrelationID(correlationID string) Loggerer
}

// LogFactory creates zerolog loggers configured for an environment
type LogFactory struct {
	base zerolog.Logger
}

var _ LogFactoryer = &LogFactory{}

// NewLogFactory creates a log factory. The local environment writes human readable output,
// every other environment writes JSON lines.
func NewLogFactory(environment string, verbose bool) *LogFactory {
	var writer io.Writer = os.Stdout
	if environment == "local" {
		writer = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return newLogFactory(writer, environment, verbose)
}

func newLogFactory(writer io.Writer, environment string, verbose bool) *LogFactory {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	base := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("environment", environment).
		Logger()
	return &LogFactory{base: base}
}

// NewLogger creates a logger without request scope
func (factory *LogFactory) NewLogger() Loggerer {
	return NewLogger(factory.base)
}

// NewLoggerWithCorrelationID creates a logger that tags every entry with the correlation id
func (factory *LogFactory) NewLoggerWithCorrelationID(correlationID string) Loggerer {
	return NewLogger(factory.base.With().Str(CorrelationIDKey, correlationID).Logger())
}
