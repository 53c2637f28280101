package order_events

import (
	"encoding/json"
	"strconv"
	"time"

	"cookieshub/internal/entities"

	"github.com/IBM/sarama"
)

type message struct {
	Event      string    `json:"evento"`
	OrderID    int64     `json:"pedidoId"`
	Status     string    `json:"status"`
	Value      float64   `json:"valor"`
	OccurredAt time.Time `json:"ocorridoEm"`
}

func toProducerMessage(topic string, event entities.OrderEvent) (*sarama.ProducerMessage, error) {
	body, err := json.Marshal(message{
		Event:      event.Type.String(),
		OrderID:    event.OrderID,
		Status:     event.Status.String(),
		Value:      event.Value.InexactFloat64(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return nil, err
	}

	// ключ по id заказа: события одного заказа попадают в одну партицию
	return &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value:     sarama.ByteEncoder(body),
		Timestamp: event.OccurredAt,
	}, nil
}
