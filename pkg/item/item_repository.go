package item

import (
	"context"

	"movelist-backend/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		GetItems(ctx context.Context, status string) ([]entities.Item, error)
		UpdateItemFields(ctx context.Context, id string, fields map[string]interface{}) error
		DeleteItem(ctx context.Context, id string) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetItems(ctx context.Context, status string) ([]entities.Item, error) {
	query := r.db.WithContext(ctx)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	var items []entities.Item
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemFields writes only the listed columns; unlisted fields are
// preserved (merge-patch semantics).
func (r *itemRepository) UpdateItemFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}
