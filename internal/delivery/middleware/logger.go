package middleware

import (
	"log/slog"
	"time"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const accessLogMessage = "HTTP Request"

// LoggerMiddleware writes one access log line per request. Successful
// requests are logged only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle hands handler errors to the echo error handler itself, so the status
// in the log line is the one the client receives.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		level := accessLevel(c.Response().Status)
		if level == slog.LevelInfo && !m.debug {
			return nil
		}
		m.write(c, level, time.Since(start), err)

		return nil
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func (m *LoggerMiddleware) write(c echo.Context, level slog.Level, latency time.Duration, err error) {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("uri", req.URL.Path),
		slog.Int("status", c.Response().Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, accessLogMessage, attrs...)
}
