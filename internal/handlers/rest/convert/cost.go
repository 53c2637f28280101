package convert

import (
	"time"

	"cookieshub/internal/entities"
	"cookieshub/internal/generated/dto"
	"cookieshub/internal/service/cost"
)

func CostToDTO(c *entities.Cost) dto.Cost {
	return dto.Cost{
		Id:        c.ID,
		Descricao: c.Description,
		Categoria: c.Category,
		Valor:     c.Value.InexactFloat64(),
		Data:      c.Date.Format(entities.DateLayout),
		Tipo:      dto.CostType(c.Type),
	}
}

func CostsToDTO(costs []entities.Cost) []dto.Cost {
	result := make([]dto.Cost, len(costs))
	for i := range costs {
		result[i] = CostToDTO(&costs[i])
	}
	return result
}

// CostFromDTO дата приходит строкой YYYY-MM-DD, иначе cost.ErrInvalidDate.
func CostFromDTO(body dto.CostWrite) (entities.CostModify, error) {
	costModify := entities.CostModify{
		Description: body.Descricao,
		Category:    body.Categoria,
		Value:       money(body.Valor),
	}
	if body.Data != nil {
		date, err := time.Parse(entities.DateLayout, *body.Data)
		if err != nil {
			return entities.CostModify{}, cost.ErrInvalidDate
		}
		costModify.Date = &date
	}
	if body.Tipo != nil {
		costType := entities.CostType(*body.Tipo)
		costModify.Type = &costType
	}
	return costModify, nil
}
