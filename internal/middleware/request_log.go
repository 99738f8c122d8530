package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"peptide-protocol-tracker/internal/platform/logger"
)

// RequestLog loguea método, ruta, status y duración de cada request,
// con el request id de chi si está presente.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				fields["request_id"] = reqID
			}

			if ww.Status() >= http.StatusInternalServerError {
				log.Error("http request", fields)
				return
			}
			log.Info("http request", fields)
		})
	}
}
