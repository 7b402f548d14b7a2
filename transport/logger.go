package transport

import (
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

type restyLogger struct {
	logger *slog.Logger
}

// NewRestyLogger routes resty's printf-style logging into slog.
func NewRestyLogger(logger *slog.Logger) resty.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &restyLogger{logger: logger.With("component", "resty")}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(sprintf(format, v...))
}

func sprintf(format string, v ...interface{}) string {
	if len(v) > 0 {
		return fmt.Sprintf(format, v...)
	}
	return format
}
