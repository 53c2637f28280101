package cost

import (
	"time"

	"cookieshub/internal/entities"
)

func ToDomain(c *CostDB) *entities.Cost {
	if c == nil {
		return nil
	}

	return &entities.Cost{
		ID:          c.ID,
		Description: c.Description,
		Category:    c.Category,
		Value:       c.Value,
		Date:        c.Date,
		Type:        entities.CostType(c.Type),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDomainModify(costModify *entities.CostModify) *CostModifyDB {
	if costModify == nil {
		return nil
	}

	costDB := &CostModifyDB{
		ID:          costModify.ID,
		Description: costModify.Description,
		Category:    costModify.Category,
		Value:       costModify.Value,
	}
	if costModify.Date != nil {
		// колонка DATE, время суток отбрасываем
		y, m, d := costModify.Date.Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		costDB.Date = &date
	}
	if costModify.Type != nil {
		costType := costModify.Type.String()
		costDB.Type = &costType
	}

	return costDB
}

func ToDomainList(costsDB []CostDB) []entities.Cost {
	if len(costsDB) == 0 {
		return []entities.Cost{}
	}

	result := make([]entities.Cost, len(costsDB))
	for i, costDB := range costsDB {
		result[i] = *ToDomain(&costDB)
	}
	return result
}
