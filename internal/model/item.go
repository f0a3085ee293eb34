package model

// Категории предметов.
var ItemCategories = map[string]string{
	"Caster":   "CS",
	"Healer":   "HL",
	"Physical": "PH",
	"Tank":     "TN",
}

// Item — предмет из лут-таблицы рейда.
type Item struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"size:60;not null;uniqueIndex"`
	Type     string `gorm:"size:20"`
	Tier     *int16
	Category string `gorm:"size:2"`
	Notes    string

	RaidID int64 `gorm:"not null;index"`
	Raid   *Raid `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// С каких боссов падает.
	Bosses []Boss `gorm:"many2many:boss_loot"`

	ClassPrios      []ClassPrio      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	IndividualPrios []IndividualPrio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ClassPrio — офицерское правило: какой класс и с каким приоритетом
// претендует на предмет.
type ClassPrio struct {
	ID        int64  `gorm:"primaryKey"`
	ItemID    int64  `gorm:"not null;index"`
	ClassName string `gorm:"column:class_name;size:50;not null"`
	Prio      int    `gorm:"not null"`
	SetByID   *int64
	SetBy     *User `gorm:"foreignKey:SetByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// IndividualPrio — то же, но для конкретного игрока.
type IndividualPrio struct {
	ID       int64   `gorm:"primaryKey"`
	ItemID   int64   `gorm:"not null;index"`
	PlayerID int64   `gorm:"not null;index"`
	Player   *Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Prio     int     `gorm:"not null"`
	SetByID  *int64
	SetBy    *User `gorm:"foreignKey:SetByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
