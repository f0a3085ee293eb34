package repo

import (
	"ContinuumLoot/internal/model"
	"context"

	"gorm.io/gorm"
)

// RaidRepository — контракт доступа к рейдам и рейдовым дням.
type RaidRepository interface {
	ListRaids(ctx context.Context) ([]model.Raid, error)
	GetRaidByID(ctx context.Context, id int64) (*model.Raid, error)

	// ListRaidDays возвращает дни от новых к старым.
	ListRaidDays(ctx context.Context) ([]model.RaidDay, error)

	GetRaidDayByID(ctx context.Context, id int64) (*model.RaidDay, error)
	CreateRaidDay(ctx context.Context, day *model.RaidDay) (*model.RaidDay, error)

	// CreateRaid и CreateBoss используются загрузчиком seed-данных.
	CreateRaid(ctx context.Context, raid *model.Raid) (*model.Raid, error)
	CreateBoss(ctx context.Context, boss *model.Boss) (*model.Boss, error)
}

type raidRepo struct {
	db *gorm.DB
}

// NewRaidRepository создаёт реализацию репозитория для Raid/RaidDay.
func NewRaidRepository(db *gorm.DB) RaidRepository {
	return &raidRepo{db: db}
}

func (r *raidRepo) ListRaids(ctx context.Context) ([]model.Raid, error) {
	var raids []model.Raid
	err := r.db.WithContext(ctx).Preload("Bosses").Order("id").Find(&raids).Error
	if err != nil {
		return nil, err
	}
	return raids, nil
}

func (r *raidRepo) GetRaidByID(ctx context.Context, id int64) (*model.Raid, error) {
	var raid model.Raid
	if err := r.db.WithContext(ctx).First(&raid, id).Error; err != nil {
		return nil, err
	}
	return &raid, nil
}

func (r *raidRepo) ListRaidDays(ctx context.Context) ([]model.RaidDay, error) {
	var days []model.RaidDay
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *raidRepo) GetRaidDayByID(ctx context.Context, id int64) (*model.RaidDay, error) {
	var day model.RaidDay
	if err := r.db.WithContext(ctx).First(&day, id).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *raidRepo) CreateRaidDay(ctx context.Context, day *model.RaidDay) (*model.RaidDay, error) {
	if err := r.db.WithContext(ctx).Create(day).Error; err != nil {
		return nil, err
	}
	return day, nil
}

func (r *raidRepo) CreateRaid(ctx context.Context, raid *model.Raid) (*model.Raid, error) {
	if err := r.db.WithContext(ctx).Create(raid).Error; err != nil {
		return nil, err
	}
	return raid, nil
}

func (r *raidRepo) CreateBoss(ctx context.Context, boss *model.Boss) (*model.Boss, error) {
	if err := r.db.WithContext(ctx).Create(boss).Error; err != nil {
		return nil, err
	}
	return boss, nil
}
