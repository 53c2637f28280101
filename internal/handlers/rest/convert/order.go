package convert

import (
	"cookieshub/internal/entities"
	"cookieshub/internal/generated/dto"

	"github.com/shopspring/decimal"
)

func OrderToDTO(order *entities.Order) dto.Order {
	return dto.Order{
		Id:           order.ID,
		Cliente:      order.Customer,
		Produto:      order.Product,
		ProdutoId:    order.ProductID,
		Quantidade:   order.Quantity,
		Valor:        order.Value.InexactFloat64(),
		Status:       dto.OrderStatus(order.Status),
		CriadoEm:     order.CreatedAt,
		AtualizadoEm: order.UpdatedAt,
	}
}

func OrdersToDTO(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, len(orders))
	for i := range orders {
		result[i] = OrderToDTO(&orders[i])
	}
	return result
}

func OrderFromDTO(body dto.OrderWrite) entities.OrderModify {
	orderModify := entities.OrderModify{
		Customer: body.Cliente,
		Product:  body.Produto,
		Quantity: body.Quantidade,
		Value:    money(body.Valor),
	}
	if body.Status != nil {
		status := entities.OrderStatusType(*body.Status)
		orderModify.Status = &status
	}
	return orderModify
}

func money(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
