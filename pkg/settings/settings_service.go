package settings

import (
	"context"
	"errors"

	"movelist-backend/domain"
	"movelist-backend/entities"
	"movelist-backend/pkg/watch"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateBudget(ctx context.Context, req domain.UpdateBudgetRequest) (domain.SettingsResponse, error)
		UpdateAlertEmail(ctx context.Context, req domain.UpdateAlertEmailRequest) (domain.SettingsResponse, error)
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.SettingsResponse, error)
		RenameCategory(ctx context.Context, index int, req domain.RenameCategoryRequest) (domain.SettingsResponse, error)
		RemoveCategory(ctx context.Context, index int) (domain.SettingsResponse, error)
		EffectiveCategories(ctx context.Context) ([]string, error)
	}

	settingsService struct {
		settingsRepository SettingsRepository
		hub                *watch.Hub
	}
)

func NewSettingsService(settingsRepository SettingsRepository, hub *watch.Hub) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		hub:                hub,
	}
}

// getOrCreate returns the singleton settings row, creating it with the
// default category list on first access.
func (s *settingsService) getOrCreate(ctx context.Context) (*entities.AppSettings, error) {
	settings, err := s.settingsRepository.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = &entities.AppSettings{
		ID:         uuid.New(),
		Categories: entities.CategoryList(DefaultCategories),
	}
	if err := s.settingsRepository.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) publish(settings *entities.AppSettings) {
	s.hub.Publish(watch.CollectionSettings, toResponse(settings))
}

func toResponse(settings *entities.AppSettings) domain.SettingsResponse {
	return domain.SettingsResponse{
		ID:         settings.ID.String(),
		Budget:     settings.Budget,
		AlertEmail: settings.AlertEmail,
		Categories: effectiveCategories(settings.Categories),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}
	return toResponse(settings), nil
}

func (s *settingsService) UpdateBudget(ctx context.Context, req domain.UpdateBudgetRequest) (domain.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	// A budget of zero or less disables budget tracking, stored as absent.
	if req.Budget != nil && *req.Budget > 0 {
		settings.Budget = req.Budget
	} else {
		settings.Budget = nil
	}

	if err := s.settingsRepository.Update(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}

	s.publish(settings)
	return toResponse(settings), nil
}

func (s *settingsService) UpdateAlertEmail(ctx context.Context, req domain.UpdateAlertEmailRequest) (domain.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	settings.AlertEmail = req.Email

	if err := s.settingsRepository.Update(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}

	s.publish(settings)
	return toResponse(settings), nil
}

// Category mutations always write the whole updated list back so the
// ordered set stays consistent under concurrent edits.
func (s *settingsService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.SettingsResponse, error) {
	return s.mutateCategories(ctx, func(list []string) ([]string, error) {
		return addCategory(list, req.Name)
	})
}

func (s *settingsService) RenameCategory(ctx context.Context, index int, req domain.RenameCategoryRequest) (domain.SettingsResponse, error) {
	return s.mutateCategories(ctx, func(list []string) ([]string, error) {
		return renameCategory(list, index, req.Name)
	})
}

func (s *settingsService) RemoveCategory(ctx context.Context, index int) (domain.SettingsResponse, error) {
	return s.mutateCategories(ctx, func(list []string) ([]string, error) {
		return removeCategory(list, index)
	})
}

func (s *settingsService) mutateCategories(ctx context.Context, mutate func([]string) ([]string, error)) (domain.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	updated, err := mutate(effectiveCategories(settings.Categories))
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	settings.Categories = entities.CategoryList(updated)
	if err := s.settingsRepository.Update(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}

	s.publish(settings)
	return toResponse(settings), nil
}

func (s *settingsService) EffectiveCategories(ctx context.Context) ([]string, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return effectiveCategories(settings.Categories), nil
}
