package cost

import (
	"context"
	"fmt"

	"cookieshub/internal/entities"
)

type Cost struct {
	repository Repository
}

func New(repository Repository) *Cost {
	return &Cost{
		repository: repository,
	}
}

func (s *Cost) CreateCost(ctx context.Context, costModify entities.CostModify) (*entities.Cost, error) {
	if costModify.Description == nil ||
		costModify.Value == nil ||
		costModify.Date == nil ||
		costModify.Type == nil {
		return nil, ErrMissingRequiredFields
	}
	if costModify.Category == nil {
		costModify.Category = new(string)
	}

	if err := validate(costModify); err != nil {
		return nil, err
	}

	cost, err := s.repository.Create(ctx, costModify)
	if err != nil {
		return nil, fmt.Errorf("create cost: %w", err)
	}
	return cost, nil
}

func (s *Cost) UpdateCost(ctx context.Context, costModify entities.CostModify) (*entities.Cost, error) {
	if costModify.ID == nil ||
		costModify.Description == nil ||
		costModify.Category == nil ||
		costModify.Value == nil ||
		costModify.Date == nil ||
		costModify.Type == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*costModify.ID) {
		return nil, ErrInvalidCostID
	}

	if err := validate(costModify); err != nil {
		return nil, err
	}

	cost, err := s.repository.Update(ctx, costModify)
	if err != nil {
		return nil, fmt.Errorf("update cost: %w", err)
	}
	return cost, nil
}

func (s *Cost) GetCost(ctx context.Context, id int64) (*entities.Cost, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCostID
	}

	cost, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cost: %w", err)
	}
	return cost, nil
}

func (s *Cost) GetCosts(ctx context.Context) ([]entities.Cost, error) {
	costs, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get costs: %w", err)
	}
	return costs, nil
}

func (s *Cost) DeleteCost(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidCostID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	return nil
}

func validate(costModify entities.CostModify) error {
	if !isValidDescription(*costModify.Description) {
		return ErrInvalidDescription
	}
	if !isValidValue(*costModify.Value) {
		return ErrInvalidValue
	}
	if !isValidDate(*costModify.Date) {
		return ErrInvalidDate
	}
	if !isValidType(costModify.Type.String()) {
		return ErrInvalidType
	}
	return nil
}
