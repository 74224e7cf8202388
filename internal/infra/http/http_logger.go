package http

import (
	"go.uber.org/zap"

	"weather-app/pkg/log"
)

const maxLoggedBody = 512

// ZapHTTPLogger writes outgoing request events to the application logger.
type ZapHTTPLogger struct {
	logger *zap.Logger
}

// NewZapHTTPLogger creates an HTTP logger tagged with the remote service name.
func NewZapHTTPLogger(service string) *ZapHTTPLogger {
	return &ZapHTTPLogger{logger: log.Named("http").With(zap.String("service", service))}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	l.logger.Debug("outgoing request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("headers", len(headers)),
	)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseSize int, latency int64) {
	l.logger.Debug("outgoing request finished",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("size", responseSize),
		zap.Int64("latencyMs", latency),
	)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	if len(responseBody) > maxLoggedBody {
		responseBody = responseBody[:maxLoggedBody]
	}
	l.logger.Warn("outgoing request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("body", responseBody),
		zap.Int64("latencyMs", latency),
		zap.Error(err),
	)
}
