package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/medibill/revenue-dashboard-api/pkg/log"
)

// LoggingMiddleware records information about every HTTP request
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Generate a correlation ID for this request
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			// Wrap the writer to capture the status code
			lrw := newLoggingResponseWriter(w)

			startTime := time.Now()

			isDev := log.IsDevelopment()

			if isDev {
				// Concise format for development
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("request started")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_type":   r.Header.Get("Content-Type"),
					"content_length": r.ContentLength,
				}).Info("request started")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			logFields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"duration_ms": responseTime.Milliseconds(),
				"status_code": lrw.statusCode,
			}
			if !isDev {
				logFields["correlation_id"] = correlationID
			}

			logger := log.L.WithFields(logFields)

			switch {
			case lrw.statusCode >= 500:
				logger.Error("request finished with error")
			case lrw.statusCode >= 400:
				logger.Warn("request finished with warning")
			default:
				logger.Info("request finished")
			}

			// Slow requests usually mean the MediBill API is dragging
			if responseTime > 500*time.Millisecond {
				log.L.WithFields(logFields).Warnf("slow request: %s", formatDuration(responseTime))
			}
		})
	}
}

// formatDuration formats the duration in a human-friendly way
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter wraps http.ResponseWriter to capture the status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recovers from unhandled panics in handlers
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("panic in handler")

						fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(r.Context()),
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("unhandled panic")
						logger.WithField("stack_trace", stackTrace).Error("panic stack trace")
					}

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
