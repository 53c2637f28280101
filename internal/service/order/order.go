package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cookieshub/internal/entities"
	"cookieshub/internal/service/product"
	"cookieshub/pkg/logger"
)

type Order struct {
	repository Repository
	products   ProductRepository
	publisher  EventPublisher
	txManager  TxManager
	log        handlerLogger
}

func New(
	repository Repository,
	products ProductRepository,
	publisher EventPublisher,
	txManager TxManager,
	log handlerLogger,
) *Order {
	return &Order{
		repository: repository,
		products:   products,
		publisher:  publisher,
		txManager:  txManager,
		log:        log.With(logger.NewField("service", "order")),
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Customer == nil ||
		orderModify.Product == nil ||
		orderModify.Quantity == nil ||
		orderModify.Value == nil {
		return nil, ErrMissingRequiredFields
	}
	if orderModify.Status == nil {
		status := entities.DefaultOrderStatus
		orderModify.Status = &status
	}

	if err := validate(orderModify); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.resolveProduct(ctx, &orderModify); err != nil {
			return err
		}

		var err error
		created, err = s.repository.Create(ctx, orderModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, entities.OrderEventCreated, created)
	return created, nil
}

// UpdateOrder полная замена изменяемых полей заказа, переходы статусов не ограничены.
func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil ||
		orderModify.Customer == nil ||
		orderModify.Product == nil ||
		orderModify.Quantity == nil ||
		orderModify.Value == nil ||
		orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}

	if err := validate(orderModify); err != nil {
		return nil, err
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.resolveProduct(ctx, &orderModify); err != nil {
			return err
		}

		var err error
		updated, err = s.repository.Update(ctx, orderModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.publish(ctx, entities.OrderEventUpdated, updated)
	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Order) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidOrderID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.publish(ctx, entities.OrderEventDeleted, &entities.Order{ID: id})
	return nil
}

func (s *Order) resolveProduct(ctx context.Context, orderModify *entities.OrderModify) error {
	name := strings.TrimSpace(*orderModify.Product)

	p, err := s.products.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return fmt.Errorf("%w: %q", ErrUnknownProduct, name)
		}
		return fmt.Errorf("resolve product: %w", err)
	}

	orderModify.Product = &p.Name
	orderModify.ProductID = &p.ID
	return nil
}

// publish не влияет на результат запроса, ошибка только логируется.
func (s *Order) publish(ctx context.Context, eventType entities.OrderEventType, order *entities.Order) {
	event := entities.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		Status:     order.Status,
		Value:      order.Value,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log.With(
			logger.NewField("error", err),
		).Error("publish order event")
	}
}

func validate(orderModify entities.OrderModify) error {
	if !isNotBlank(*orderModify.Customer) {
		return ErrInvalidCustomer
	}
	if !isNotBlank(*orderModify.Product) {
		return ErrInvalidProduct
	}
	if !isValidQuantity(*orderModify.Quantity) {
		return ErrInvalidQuantity
	}
	if !isValidValue(*orderModify.Value) {
		return ErrInvalidValue
	}
	if !isValidStatus(orderModify.Status.String()) {
		return ErrInvalidStatus
	}
	return nil
}
