package repo

import (
	"ContinuumLoot/internal/model"
	"context"

	"gorm.io/gorm"
)

// LootRepository — контракт доступа к истории выдач.
type LootRepository interface {
	// ListLootHistory возвращает строки от самого свежего рейдового дня к старым.
	ListLootHistory(ctx context.Context) ([]model.LootHistory, error)

	CreateLootHistory(ctx context.Context, line *model.LootHistory) (*model.LootHistory, error)
	UpdateLootHistory(ctx context.Context, line *model.LootHistory) error

	// DeleteLootHistory удаляет строку; отсутствующий id — no-op.
	DeleteLootHistory(ctx context.Context, id int64) error
}

type lootRepo struct {
	db *gorm.DB
}

// NewLootRepository создаёт реализацию репозитория для LootHistory.
func NewLootRepository(db *gorm.DB) LootRepository {
	return &lootRepo{db: db}
}

func (r *lootRepo) ListLootHistory(ctx context.Context) ([]model.LootHistory, error) {
	var lines []model.LootHistory
	err := r.db.WithContext(ctx).
		Joins("JOIN raid_days ON raid_days.id = loot_histories.raid_day_id").
		Order("raid_days.date DESC, loot_histories.id DESC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *lootRepo) CreateLootHistory(ctx context.Context, line *model.LootHistory) (*model.LootHistory, error) {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *lootRepo) UpdateLootHistory(ctx context.Context, line *model.LootHistory) error {
	return r.db.WithContext(ctx).Model(&model.LootHistory{}).
		Where("id = ?", line.ID).
		Updates(map[string]any{
			"raid_day_id": line.RaidDayID,
			"item_id":     line.ItemID,
			"player_id":   line.PlayerID,
		}).Error
}

func (r *lootRepo) DeleteLootHistory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.LootHistory{}, id).Error
}
