package handlers

import (
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"trainingquote/logger"
	"trainingquote/metrics"
)

// RequestLogMiddleware logs every request and records its duration, labeled
// by the matched route pattern to keep metric cardinality bounded.
func RequestLogMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()
		err := e.Next()
		elapsed := time.Since(start)

		status := e.Status()
		if status == 0 {
			status = 200
		}
		route := e.Request.Pattern
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(e.Request.Method, route, strconv.Itoa(status), elapsed)
		fields := []zap.Field{
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
		}
		if err != nil {
			logger.Log.Warn("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Log.Debug("request", fields...)
		}
		return err
	}
}
