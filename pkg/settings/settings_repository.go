package settings

import (
	"context"

	"movelist-backend/entities"

	"gorm.io/gorm"
)

type (
	SettingsRepository interface {
		Get(ctx context.Context) (*entities.AppSettings, error)
		Create(ctx context.Context, settings *entities.AppSettings) error
		Update(ctx context.Context, settings *entities.AppSettings) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row.
func (r *settingsRepository) Get(ctx context.Context) (*entities.AppSettings, error) {
	var settings entities.AppSettings
	if err := r.db.WithContext(ctx).Order("created_at asc").First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *entities.AppSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entities.AppSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
