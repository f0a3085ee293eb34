package model

// Уровни доступа учётной записи.
const (
	PermissionMember  = 0
	PermissionOfficer = 1
	PermissionAdmin   = 2
)

// User — учётная запись для входа. Привязана максимум к одному персонажу,
// и наоборот: персонаж может иметь максимум одну учётную запись.
type User struct {
	ID              int64  `gorm:"primaryKey"`
	Username        string `gorm:"size:30;not null;uniqueIndex"`
	Password        string `gorm:"not null"` // bcrypt-хеш
	PermissionLevel int    `gorm:"not null;default:0"`

	PlayerID *int64  `gorm:"uniqueIndex"`
	Player   *Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
