package repo

import (
	"ContinuumLoot/internal/model"
	"context"

	"gorm.io/gorm"
)

// PlayerRepository — контракт доступа к персонажам и их дочерним коллекциям.
// Персонаж всегда загружается целиком: вишлист и посещаемость идут вместе с
// базовой строкой, никаких ленивых дозагрузок по полю.
type PlayerRepository interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayerByID(ctx context.Context, id int64) (*model.Player, error)

	// GetPlayerByName ищет без учёта регистра.
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)

	CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error)

	// UpdatePlayerFields обновляет только перечисленные колонки.
	UpdatePlayerFields(ctx context.Context, id int64, fields map[string]any) error

	AddWishlistEntries(ctx context.Context, entries []model.WishlistEntry) error
	DeleteWishlistEntries(ctx context.Context, ids []int64) error

	// DeleteWishlistFor убирает строку вишлиста (player, item), если она есть.
	DeleteWishlistFor(ctx context.Context, playerID, itemID int64) error

	// ReplaceAttendance заменяет посещаемость целиком.
	ReplaceAttendance(ctx context.Context, playerID int64, raidDayIDs []int64) error

	// AddAttendance отмечает посещение; повторная отметка — no-op.
	AddAttendance(ctx context.Context, playerID, raidDayID int64) error

	SetActive(ctx context.Context, playerID int64, active bool) error
}

type playerRepo struct {
	db *gorm.DB
}

// NewPlayerRepository создаёт реализацию репозитория для Player.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepo{db: db}
}

func (r *playerRepo) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	err := r.db.WithContext(ctx).
		Preload("Wishlist", func(db *gorm.DB) *gorm.DB { return db.Order("priority") }).
		Preload("Attendance").
		Order("name").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepo) GetPlayerByID(ctx context.Context, id int64) (*model.Player, error) {
	var p model.Player
	err := r.db.WithContext(ctx).
		Preload("Wishlist", func(db *gorm.DB) *gorm.DB { return db.Order("priority") }).
		Preload("Attendance").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepo) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	var p model.Player
	err := r.db.WithContext(ctx).
		Preload("Wishlist", func(db *gorm.DB) *gorm.DB { return db.Order("priority") }).
		Preload("Attendance").
		Where("LOWER(name) = LOWER(?)", name).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepo) CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *playerRepo) UpdatePlayerFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *playerRepo) AddWishlistEntries(ctx context.Context, entries []model.WishlistEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *playerRepo) DeleteWishlistEntries(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.WishlistEntry{}, ids).Error
}

func (r *playerRepo) DeleteWishlistFor(ctx context.Context, playerID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("player_id = ? AND item_id = ?", playerID, itemID).
		Delete(&model.WishlistEntry{}).Error
}

func (r *playerRepo) ReplaceAttendance(ctx context.Context, playerID int64, raidDayIDs []int64) error {
	p := model.Player{ID: playerID}
	if len(raidDayIDs) == 0 {
		return r.db.WithContext(ctx).Model(&p).Association("Attendance").Clear()
	}
	var days []model.RaidDay
	if err := r.db.WithContext(ctx).Find(&days, raidDayIDs).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&p).Association("Attendance").Replace(&days)
}

func (r *playerRepo) AddAttendance(ctx context.Context, playerID, raidDayID int64) error {
	p := model.Player{ID: playerID}
	day := model.RaidDay{ID: raidDayID}
	// Append по join-таблице идемпотентен
	return r.db.WithContext(ctx).Model(&p).Association("Attendance").Append(&day)
}

func (r *playerRepo) SetActive(ctx context.Context, playerID int64, active bool) error {
	return r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", playerID).Update("is_active", active).Error
}
