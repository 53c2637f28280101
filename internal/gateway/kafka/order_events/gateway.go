package order_events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cookieshub/internal/entities"
	retrierconfig "cookieshub/pkg/retrier"
	"cookieshub/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const serviceName = "kafka"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderEventsGateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *OrderEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &OrderEventsGateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *OrderEventsGateway) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	msg, err := toProducerMessage(g.topic, event)
	if err != nil {
		return fmt.Errorf("gateway order events, encode %s: %w", event.Type, err)
	}

	err = g.executeWithMetrics(ctx, event.Type.String(), func(ctx context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway order events, publish %s for order %d: %w", event.Type, event.OrderID, err)
	}

	return nil
}

func isRetryable(err error) bool {
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrLeaderNotAvailable,
			sarama.ErrNotLeaderForPartition,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend,
			sarama.ErrNetworkException:
			return true
		default:
			return false
		}
	}

	return errors.Is(err, sarama.ErrOutOfBrokers) || errors.Is(err, sarama.ErrNotConnected)
}

func (g *OrderEventsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return fmt.Sprintf("KERROR_%d", int16(kerr))
	}
	return "UNKNOWN"
}
