package rate_limiter

import (
	"net/http"
	"strconv"

	"cookieshub/pkg/logger"

	"github.com/gorilla/mux"
)

// Middleware отвечает 429, когда bucket ключа исчерпан.
// limit попадает только в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, limiter Limiter, keyFunc KeyFunc, limit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("scope", scopeOf(key)),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(scopeOf(key), r.Method, handlerPath).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"too many requests"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
