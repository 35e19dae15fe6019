package api

import (
	"net/http"
	"strconv"
	"time"

	"alcyxob/workout-log/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestLoggingMiddleware logs every request once it completes, at a level
// chosen by the response status.
func RequestLoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		// The user ID is only known after AuthMiddleware has run.
		userID := c.GetString(ContextUserIDKey)
		if userID == "" {
			userID = "anonymous"
		}
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("user_id", userID),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
			zap.String("ip", c.ClientIP()),
		}
		for _, err := range c.Errors {
			fields = append(fields, zap.Error(err.Err))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed with server error", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed with client error", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// RecoveryMiddleware turns a handler panic into a 500 and counts it.
func RecoveryMiddleware(logger *zap.Logger, metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(ContextRequestIDKey)),
					zap.Stack("stack"),
				)
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				abortWithError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// RequestMetricsMiddleware records request counts by method and status and
// durations by route template.
func RequestMetricsMiddleware(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		start := time.Now()
		defer func() {
			metricsManager.GaugeRequests.Dec()
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metricsManager.HistRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			metricsManager.CounterRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		}()
		c.Next()
	}
}
