package middleware

import (
	"net/http"
	"time"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/platform/logger"
)

// responseWriter wrapper para capturar status code e tamanho da resposta
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

// WriteHeader captura status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captura tamanho da resposta
func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// HTTPLogger middleware para logging de requisições HTTP
func HTTPLogger(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"status_code": ww.statusCode,
				"duration_ms": duration.Milliseconds(),
				"size_bytes":  ww.size,
				"ip":          shared.GetClientIP(r),
				"user_agent":  r.Header.Get("User-Agent"),
			}

			if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
				fields["request_id"] = requestID
			}

			message := "HTTP request processed"
			switch {
			case ww.statusCode >= 500:
				logger.ErrorWithFields(message, fields)
			case ww.statusCode >= 400:
				logger.WarnWithFields(message, fields)
			default:
				if r.URL.Path == "/health" {
					logger.DebugWithFields(message, fields)
				} else {
					logger.InfoWithFields(message, fields)
				}
			}
		})
	}
}
