package order

import (
	"cookieshub/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:        o.ID,
		Customer:  o.Customer,
		ProductID: o.ProductID,
		Product:   o.ProductName,
		Quantity:  o.Quantity,
		Value:     o.Value,
		Status:    entities.OrderStatusType(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:          orderModify.ID,
		Customer:    orderModify.Customer,
		ProductID:   orderModify.ProductID,
		ProductName: orderModify.Product,
		Quantity:    orderModify.Quantity,
		Value:       orderModify.Value,
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
