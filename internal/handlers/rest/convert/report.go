package convert

import (
	"cookieshub/internal/entities"
	"cookieshub/internal/generated/dto"
)

func DashboardToDTO(d *entities.Dashboard) dto.Dashboard {
	return dto.Dashboard{
		PedidosTotais:   d.OrdersTotal,
		VendasTotais:    d.SalesTotal.InexactFloat64(),
		ProdutosEstoque: d.ProductsActive,
		CustosTotais:    d.CostsTotal.InexactFloat64(),
	}
}

func DailySalesToDTO(sales []entities.DailySales) []dto.DailySales {
	result := make([]dto.DailySales, len(sales))
	for i, s := range sales {
		result[i] = dto.DailySales{Data: s.Day, Valor: s.Value.InexactFloat64()}
	}
	return result
}

func MonthlyProfitToDTO(profit []entities.MonthlyProfit) []dto.MonthlyProfit {
	result := make([]dto.MonthlyProfit, len(profit))
	for i, p := range profit {
		result[i] = dto.MonthlyProfit{Mes: p.Month, Valor: p.Value.InexactFloat64()}
	}
	return result
}

func MonthlyTrendsToDTO(trends []entities.MonthlyTrend) []dto.MonthlyTrend {
	result := make([]dto.MonthlyTrend, len(trends))
	for i, t := range trends {
		result[i] = dto.MonthlyTrend{
			Mes:        t.Month,
			Pedidos:    t.Orders,
			Quantidade: t.Quantity,
			Vendas:     t.Sales.InexactFloat64(),
		}
	}
	return result
}

func ProductsSoldToDTO(sold []entities.ProductSold) []dto.ProductSold {
	result := make([]dto.ProductSold, len(sold))
	for i, p := range sold {
		result[i] = dto.ProductSold{Produto: p.Product, Quantidade: p.Quantity}
	}
	return result
}
