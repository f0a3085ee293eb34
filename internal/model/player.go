package model

// Коды классов персонажей, как их хранит БД. Наружу уходят коды,
// фронтенд сам разворачивает их в полные названия.
var ClassCodes = map[string]string{
	"Druid":   "DR",
	"Hunter":  "HN",
	"Mage":    "MG",
	"Paladin": "PL",
	"Priest":  "PR",
	"Rogue":   "RG",
	"Shaman":  "SH",
	"Warlock": "WL",
	"Warrior": "WR",
}

// Коды ролей.
var RoleCodes = map[string]string{
	"DPS":    "D",
	"Tank":   "T",
	"Healer": "H",
}

// Ранги — порядковые, больший ранг включает права меньшего.
const (
	RankInactive   = 0
	RankPug        = 10
	RankTrial      = 20
	RankMember     = 30
	RankVeteran    = 40
	RankRaider     = 47
	RankCoreRaider = 50
	RankClassLead  = 60
	RankOfficer    = 70
	RankGM         = 80
)

// Player — персонаж гильдии. Может существовать без учётной записи
// (незаклеймленный персонаж из выгрузки посещаемости).
type Player struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"size:20;not null;uniqueIndex"`
	Notes string
	Class string `gorm:"column:player_class;size:2;not null;default:WR"`
	Role  string `gorm:"size:1;not null;default:D"`
	Rank  int    `gorm:"not null;default:20"`

	// Производный флаг: пересчитывается по окну последних рейдовых дней.
	IsActive bool `gorm:"not null;default:true"`

	Wishlist   []WishlistEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Attendance []RaidDay       `gorm:"many2many:attendance"`
}

// WishlistEntry — строка вишлиста: (игрок, предмет, приоритет).
type WishlistEntry struct {
	ID       int64 `gorm:"primaryKey"`
	PlayerID int64 `gorm:"not null;index"`
	ItemID   int64 `gorm:"not null;index"`
	Item     *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Priority int   `gorm:"not null"`
}

// TableName — историческое имя таблицы, без плюрализации.
func (WishlistEntry) TableName() string { return "wishlist" }
