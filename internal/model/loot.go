package model

// LootHistory — одна выдача: предмет достался игроку в конкретный
// рейдовый день.
type LootHistory struct {
	ID        int64    `gorm:"primaryKey"`
	RaidDayID int64    `gorm:"not null;index"`
	RaidDay   *RaidDay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ItemID    int64    `gorm:"not null;index"`
	Item      *Item    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PlayerID  int64    `gorm:"not null;index"`
	Player    *Player  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
