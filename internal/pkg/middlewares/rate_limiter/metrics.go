package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	scopeGlobal = "global"
	scopeClient = "client"
)

// RateLimitExceededTotal scope различает общий лимит сервиса и лимит по клиенту (логин).
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected with 429, by limiter scope and route",
	},
	[]string{"scope", "method", "route"},
)

func scopeOf(key string) string {
	if key == "" {
		return scopeGlobal
	}
	return scopeClient
}
