package repo

import (
	"ContinuumLoot/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к предметам и их приоритетам.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItemByID(ctx context.Context, id int64) (*model.Item, error)

	// CreateItem создаёт предмет вместе со связями с боссами (для seed).
	CreateItem(ctx context.Context, item *model.Item) (*model.Item, error)

	// UpdateItemFields обновляет только перечисленные колонки.
	UpdateItemFields(ctx context.Context, id int64, fields map[string]any) error

	AddClassPrios(ctx context.Context, prios []model.ClassPrio) error
	DeleteClassPrios(ctx context.Context, ids []int64) error

	AddIndividualPrios(ctx context.Context, prios []model.IndividualPrio) error
	DeleteIndividualPrios(ctx context.Context, ids []int64) error

	// DeleteIndividualPrioFor убирает правило (player, item), если оно есть.
	DeleteIndividualPrioFor(ctx context.Context, playerID, itemID int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("Bosses").
		Preload("ClassPrios", func(db *gorm.DB) *gorm.DB { return db.Order("prio") }).
		Preload("IndividualPrios", func(db *gorm.DB) *gorm.DB { return db.Order("prio") }).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).
		Preload("Bosses").
		Preload("ClassPrios", func(db *gorm.DB) *gorm.DB { return db.Order("prio") }).
		Preload("IndividualPrios", func(db *gorm.DB) *gorm.DB { return db.Order("prio") }).
		First(&it, id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) UpdateItemFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *itemRepo) AddClassPrios(ctx context.Context, prios []model.ClassPrio) error {
	if len(prios) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&prios).Error
}

func (r *itemRepo) DeleteClassPrios(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.ClassPrio{}, ids).Error
}

func (r *itemRepo) AddIndividualPrios(ctx context.Context, prios []model.IndividualPrio) error {
	if len(prios) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&prios).Error
}

func (r *itemRepo) DeleteIndividualPrios(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.IndividualPrio{}, ids).Error
}

func (r *itemRepo) DeleteIndividualPrioFor(ctx context.Context, playerID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("player_id = ? AND item_id = ?", playerID, itemID).
		Delete(&model.IndividualPrio{}).Error
}
