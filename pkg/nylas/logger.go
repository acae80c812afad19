package nylas

import "github.com/sirupsen/logrus"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards all log output. It is the default when no logger is
// configured.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(msg string, fields map[string]interface{}) {}

// Info implements Logger.
func (NoopLogger) Info(msg string, fields map[string]interface{}) {}

// Warn implements Logger.
func (NoopLogger) Warn(msg string, fields map[string]interface{}) {}

// Error implements Logger.
func (NoopLogger) Error(msg string, fields map[string]interface{}) {}

// NewLogrusLogger adapts a logrus logger to the Logger interface. Passing nil
// uses the logrus standard logger.
func NewLogrusLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &logrusLogger{logger: logger}
}

type logrusLogger struct {
	logger *logrus.Logger
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}
