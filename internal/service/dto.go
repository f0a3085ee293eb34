package service

import (
	"ContinuumLoot/internal/model"
)

// Transfer-представления сущностей. JSON-теги — единственная таблица
// соответствия внутренних и внешних имён полей (player_class → class,
// class_name → class, priority → prio).

type WishlistDTO struct {
	ItemID int64 `json:"item_id"`
	Prio   int   `json:"prio"`
}

type PlayerDTO struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Notes      string        `json:"notes"`
	Class      string        `json:"class"`
	Role       string        `json:"role"`
	Rank       int           `json:"rank"`
	IsActive   bool          `json:"is_active"`
	Attendance []int64       `json:"attendance"`
	Wishlist   []WishlistDTO `json:"wishlist"`
}

type ClassPrioDTO struct {
	Class string `json:"class"`
	Prio  int    `json:"prio"`
	SetBy *int64 `json:"set_by"`
}

type IndividualPrioDTO struct {
	PlayerID int64  `json:"player_id"`
	Prio     int    `json:"prio"`
	SetBy    *int64 `json:"set_by"`
}

type ItemDTO struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Type           string              `json:"type"`
	Tier           *int16              `json:"tier"`
	Category       string              `json:"category"`
	Notes          string              `json:"notes"`
	Raid           int64               `json:"raid"`
	Bosses         []string            `json:"bosses"`
	ClassPrio      []ClassPrioDTO      `json:"class_prio"`
	IndividualPrio []IndividualPrioDTO `json:"individual_prio"`
}

type RaidDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	ShortName string   `json:"short_name"`
	Bosses    []string `json:"bosses"`
}

type RaidDayDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	RaidID int64  `json:"raid_id"`
}

type LootHistoryDTO struct {
	ID        int64 `json:"id"`
	ItemID    int64 `json:"item_id"`
	PlayerID  int64 `json:"player_id"`
	RaidDayID int64 `json:"raid_day_id"`
}

// CurrentPlayerDTO — публичная часть текущей сессии.
type CurrentPlayerDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PermissionLevel int    `json:"permission_level"`
}

type UserDTO struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	PlayerID        *int64 `json:"player_id"`
	PermissionLevel int    `json:"permission_level"`
}

func PlayerToDTO(p *model.Player) PlayerDTO {
	dto := PlayerDTO{
		ID:         p.ID,
		Name:       p.Name,
		Notes:      p.Notes,
		Class:      p.Class,
		Role:       p.Role,
		Rank:       p.Rank,
		IsActive:   p.IsActive,
		Attendance: make([]int64, 0, len(p.Attendance)),
		Wishlist:   make([]WishlistDTO, 0, len(p.Wishlist)),
	}
	for _, day := range p.Attendance {
		dto.Attendance = append(dto.Attendance, day.ID)
	}
	for _, w := range p.Wishlist {
		dto.Wishlist = append(dto.Wishlist, WishlistDTO{ItemID: w.ItemID, Prio: w.Priority})
	}
	return dto
}

func ItemToDTO(it *model.Item) ItemDTO {
	dto := ItemDTO{
		ID:             it.ID,
		Name:           it.Name,
		Type:           it.Type,
		Tier:           it.Tier,
		Category:       it.Category,
		Notes:          it.Notes,
		Raid:           it.RaidID,
		Bosses:         make([]string, 0, len(it.Bosses)),
		ClassPrio:      make([]ClassPrioDTO, 0, len(it.ClassPrios)),
		IndividualPrio: make([]IndividualPrioDTO, 0, len(it.IndividualPrios)),
	}
	for _, b := range it.Bosses {
		dto.Bosses = append(dto.Bosses, b.Name)
	}
	for _, cp := range it.ClassPrios {
		dto.ClassPrio = append(dto.ClassPrio, ClassPrioDTO{Class: cp.ClassName, Prio: cp.Prio, SetBy: cp.SetByID})
	}
	for _, ip := range it.IndividualPrios {
		dto.IndividualPrio = append(dto.IndividualPrio, IndividualPrioDTO{PlayerID: ip.PlayerID, Prio: ip.Prio, SetBy: ip.SetByID})
	}
	return dto
}

func RaidToDTO(raid *model.Raid) RaidDTO {
	dto := RaidDTO{
		ID:        raid.ID,
		Name:      raid.Name,
		ShortName: raid.ShortName,
		Bosses:    make([]string, 0, len(raid.Bosses)),
	}
	for _, b := range raid.Bosses {
		dto.Bosses = append(dto.Bosses, b.Name)
	}
	return dto
}

func RaidDayToDTO(day *model.RaidDay) RaidDayDTO {
	return RaidDayDTO{
		ID:     day.ID,
		Name:   day.Name,
		Date:   day.Date.Format(model.DateFormat),
		RaidID: day.RaidID,
	}
}

func LootHistoryToDTO(line *model.LootHistory) LootHistoryDTO {
	return LootHistoryDTO{
		ID:        line.ID,
		ItemID:    line.ItemID,
		PlayerID:  line.PlayerID,
		RaidDayID: line.RaidDayID,
	}
}

func UserToDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		PlayerID:        u.PlayerID,
		PermissionLevel: u.PermissionLevel,
	}
}
