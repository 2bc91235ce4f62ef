package middleware

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-rbd/pkg/logging"
)

// Logging creates middleware that logs each request with timing and
// the request ID when present
func Logging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Latency(time.Since(start)),
			}
			if id := GetRequestID(r); id != "" {
				fields = append(fields, logging.RequestID(id))
			}
			logger.Info("http request", fields...)
		})
	}
}
