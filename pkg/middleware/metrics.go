package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/advanced-computing/bouncing-penguin/pkg/metrics"
)

// Instrument mede uma rota pelo padrão registrado, não pelo caminho concreto,
// para manter a cardinalidade dos labels fixa
func Instrument(method, pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := newStatusResponseWriter(w)
		startTime := time.Now()

		next.ServeHTTP(srw, r)

		metrics.HTTPRequests.WithLabelValues(method, pattern, strconv.Itoa(srw.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, pattern).Observe(time.Since(startTime).Seconds())
	})
}
