package model

import "time"

// Raid — повторяемый рейдовый данж (BWL, AQ, ...).
type Raid struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:30;not null"`
	ShortName string `gorm:"size:10;not null"`
	Bosses    []Boss `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type Boss struct {
	ID     int64  `gorm:"primaryKey"`
	Name   string `gorm:"size:30;not null"`
	RaidID int64  `gorm:"not null;index"`
}

// RaidDay — один датированный заход в рейд.
type RaidDay struct {
	ID     int64     `gorm:"primaryKey"`
	Name   string    `gorm:"size:30;not null"`
	Date   time.Time `gorm:"type:date;not null"`
	RaidID int64     `gorm:"not null;index"`
	Raid   *Raid     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// DateFormat — формат дат во всех ответах API.
const DateFormat = "2006-01-02"
