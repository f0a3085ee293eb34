package repo

import (
	"ContinuumLoot/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к учётным записям.
type UserRepository interface {
	// CreateUser создаёт учётную запись (вместе с привязкой к персонажу, если задана).
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername ищет по точному имени пользователя (оно хранится в нижнем регистре).
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserByID возвращает учётную запись с персонажем.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// GetUserByPlayerID находит учётную запись, привязанную к персонажу.
	GetUserByPlayerID(ctx context.Context, playerID int64) (*model.User, error)

	ListUsers(ctx context.Context) ([]model.User, error)

	UpdatePermissionLevel(ctx context.Context, id int64, level int) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Player").
		Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Player").First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByPlayerID(ctx context.Context, playerID int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdatePermissionLevel(ctx context.Context, id int64, level int) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).Update("permission_level", level).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).Update("password", passwordHash).Error
}
