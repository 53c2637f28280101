package store_probe

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StoreUp = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "store_up",
		Help: "1 if the last database ping succeeded, 0 otherwise",
	},
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreProbe периодически пингует базу и хранит последний результат.
type StoreProbe struct {
	pinger   Pinger
	interval time.Duration
	up       atomic.Bool
}

func NewStoreProbe(pinger Pinger, interval time.Duration) *StoreProbe {
	return &StoreProbe{
		pinger:   pinger,
		interval: interval,
	}
}

func (s *StoreProbe) TTL() time.Duration {
	return s.interval
}

func (s *StoreProbe) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.pinger.Ping(ctxWithTimeout); err != nil {
		s.up.Store(false)
		StoreUp.Set(0)
		return fmt.Errorf("store ping: %w", err)
	}

	s.up.Store(true)
	StoreUp.Set(1)
	return nil
}

func (s *StoreProbe) Info() string {
	return "store probe"
}

// Up false до первого успешного пинга.
func (s *StoreProbe) Up() bool {
	return s.up.Load()
}
