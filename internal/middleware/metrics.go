package middleware

import (
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"stray-adoption/internal/platform/metrics"
)

// Metrics cuenta cada request por código de estado.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	})
}
