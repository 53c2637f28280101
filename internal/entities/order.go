package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64
	Customer  string
	ProductID *int64
	// Product имя товара: текущее из каталога, либо снимок на момент записи, если товар удалён.
	Product   string
	Quantity  int
	Value     decimal.Decimal
	Status    OrderStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pendente"
	OrderCompleted OrderStatusType = "concluido"
	OrderCancelled OrderStatusType = "cancelado"
)

const DefaultOrderStatus = OrderPending

func (t OrderStatusType) String() string {
	return string(t)
}

// OrderModify входные данные создания и полной замены заказа.
// ProductID заполняется сервисом после разрешения имени товара.
type OrderModify struct {
	ID        *int64
	Customer  *string
	Product   *string
	ProductID *int64
	Quantity  *int
	Value     *decimal.Decimal
	Status    *OrderStatusType
}

type OrderEventType string

const (
	OrderEventCreated OrderEventType = "pedido.criado"
	OrderEventUpdated OrderEventType = "pedido.atualizado"
	OrderEventDeleted OrderEventType = "pedido.removido"
)

func (t OrderEventType) String() string {
	return string(t)
}

type OrderEvent struct {
	Type       OrderEventType
	OrderID    int64
	Status     OrderStatusType
	Value      decimal.Decimal
	OccurredAt time.Time
}
