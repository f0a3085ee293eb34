package repo

import (
	"ContinuumLoot/internal/model"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение и накатывает схему.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate мигрирует все модели. Вынесен отдельно, чтобы тесты могли
// использовать его с sqlite.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Raid{},
		&model.Boss{},
		&model.RaidDay{},
		&model.Player{},
		&model.User{},
		&model.Item{},
		&model.WishlistEntry{},
		&model.ClassPrio{},
		&model.IndividualPrio{},
		&model.LootHistory{},
	)
	if err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
