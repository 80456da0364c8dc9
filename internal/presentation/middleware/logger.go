package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"photoshare/pkg/logger"
)

// RequestLogger writes one access log line per request through the process logger.
func RequestLogger() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			keyvals := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"remote_ip", v.RemoteIP,
			}
			if v.RequestID != "" {
				keyvals = append(keyvals, "request_id", v.RequestID)
			}

			if v.Error != nil {
				logger.Warn("request", append(keyvals, "err", v.Error)...)

				return nil
			}

			logger.Info("request", keyvals...)

			return nil
		},
	})
}
