package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed держит отдельный token bucket на каждый ключ (ip клиента, маршрут и т.п.).
// Ключи, к которым не обращались дольше idleTTL, вычищаются методом Cleanup.
type Keyed struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

func NewKeyed(limit rate.Limit, burst int, idleTTL time.Duration) *Keyed {
	return &Keyed{
		limiters: make(map[string]*entry),
		limit:    limit,
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// PerMinute лимит из n событий в минуту.
func PerMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(n))
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Cleanup удаляет простаивающие ключи и возвращает их количество.
func (k *Keyed) Cleanup() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	removed := 0
	for key, e := range k.limiters {
		if now.Sub(e.lastSeen) > k.idleTTL {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// Global один общий bucket для всего сервиса, ключ игнорируется.
type Global struct {
	limiter *rate.Limiter
}

func NewGlobal(qps int, burst int) *Global {
	return &Global{limiter: rate.NewLimiter(rate.Limit(qps), burst)}
}

func (g *Global) Allow(string) bool {
	return g.limiter.Allow()
}
