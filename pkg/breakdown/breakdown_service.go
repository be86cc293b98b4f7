package breakdown

import (
	"context"
	"errors"

	"movelist-backend/domain"
	"movelist-backend/entities"

	"gorm.io/gorm"
)

type (
	// Narrow read-only views over the stores, satisfied by the item,
	// person and settings repositories. Keeping them local lets the
	// derived computations be tested with static fixtures.
	ItemSource interface {
		GetItems(ctx context.Context, status string) ([]entities.Item, error)
	}

	PersonSource interface {
		GetPeople(ctx context.Context) ([]entities.Person, error)
	}

	SettingsSource interface {
		Get(ctx context.Context) (*entities.AppSettings, error)
	}

	BreakdownService interface {
		GetSpendBreakdown(ctx context.Context) (domain.SpendBreakdown, error)
		GetBudgetStatus(ctx context.Context) (domain.BudgetStatus, error)
		GetSummary(ctx context.Context) (domain.ItemSummary, error)
	}

	breakdownService struct {
		items    ItemSource
		people   PersonSource
		settings SettingsSource
	}
)

func NewBreakdownService(items ItemSource, people PersonSource, settings SettingsSource) BreakdownService {
	return &breakdownService{
		items:    items,
		people:   people,
		settings: settings,
	}
}

func (s *breakdownService) GetSpendBreakdown(ctx context.Context) (domain.SpendBreakdown, error) {
	items, err := s.items.GetItems(ctx, "all")
	if err != nil {
		return domain.SpendBreakdown{}, err
	}
	people, err := s.people.GetPeople(ctx)
	if err != nil {
		return domain.SpendBreakdown{}, err
	}

	result, _ := BreakdownSpending(items, people)
	return result, nil
}

func (s *breakdownService) GetBudgetStatus(ctx context.Context) (domain.BudgetStatus, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		// No settings row yet means no budget is configured.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BudgetStatus{}, nil
		}
		return domain.BudgetStatus{}, err
	}

	items, err := s.items.GetItems(ctx, "all")
	if err != nil {
		return domain.BudgetStatus{}, err
	}

	status, _ := EvaluateBudget(items, settings.Budget)
	return status, nil
}

func (s *breakdownService) GetSummary(ctx context.Context) (domain.ItemSummary, error) {
	items, err := s.items.GetItems(ctx, "all")
	if err != nil {
		return domain.ItemSummary{}, err
	}
	return Summarize(items), nil
}
