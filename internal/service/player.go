package service

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayerService — ростер: чтение, обновление с выверкой вишлиста,
// массовая загрузка посещаемости и пересчёт активности.
type PlayerService struct {
	players      repo.PlayerRepository
	raids        repo.RaidRepository
	window       int
	defaultClass string
	logger       *zap.SugaredLogger
}

func NewPlayerService(players repo.PlayerRepository, raids repo.RaidRepository, cfg *config.Config, logger *zap.SugaredLogger) *PlayerService {
	return &PlayerService{
		players:      players,
		raids:        raids,
		window:       cfg.AttendanceWindow,
		defaultClass: cfg.DefaultClass,
		logger:       logger,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]PlayerDTO, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PlayerDTO, 0, len(players))
	for i := range players {
		out = append(out, PlayerToDTO(&players[i]))
	}
	return out, nil
}

// Update применяет полное целевое состояние персонажа.
//
// notes и role применяются всегда; name/class/rank/attendance — только если
// у вызывающего есть ActionEditPlayerCore, иначе эти поля МОЛЧА остаются
// прежними (запрос целиком не отклоняется). Вишлист сводится к запрошенному
// набору upsert-ом недостающих пар и удалением лишних — id совпавших строк
// не пересоздаются.
func (s *PlayerService) Update(ctx context.Context, caller *model.User, dto PlayerDTO) error {
	if err := Allowed(caller, ActionEditOwnPlayer, dto.ID); err != nil {
		return err
	}

	current, err := s.players.GetPlayerByID(ctx, dto.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: unknown player %d", ErrInvalid, dto.ID)
	}
	if err != nil {
		return err
	}

	fields := map[string]any{
		"notes": dto.Notes,
		"role":  dto.Role,
	}

	coreAllowed := Allowed(caller, ActionEditPlayerCore, dto.ID) == nil
	if coreAllowed {
		// пустое имя в запросе не стирает сохранённое
		if name := NormalizeName(dto.Name); name != "" {
			fields["name"] = name
		}
		fields["player_class"] = dto.Class
		fields["rank"] = dto.Rank
	}

	if err := s.players.UpdatePlayerFields(ctx, dto.ID, fields); err != nil {
		return err
	}

	toAdd, toDelete := diffWishlist(current.ID, current.Wishlist, dto.Wishlist)
	if err := s.players.AddWishlistEntries(ctx, toAdd); err != nil {
		return err
	}
	if err := s.players.DeleteWishlistEntries(ctx, toDelete); err != nil {
		return err
	}

	if coreAllowed {
		if err := s.players.ReplaceAttendance(ctx, dto.ID, dto.Attendance); err != nil {
			return err
		}
	}

	return nil
}

type wishlistKey struct {
	itemID int64
	prio   int
}

// diffWishlist сравнивает текущий вишлист с запрошенным набором пар
// (item, prio). Совпавшие тройки не трогаются, недостающие создаются,
// лишние удаляются по id.
func diffWishlist(playerID int64, current []model.WishlistEntry, want []WishlistDTO) (toAdd []model.WishlistEntry, toDelete []int64) {
	wanted := make(map[wishlistKey]bool, len(want))
	for _, w := range want {
		wanted[wishlistKey{itemID: w.ItemID, prio: w.Prio}] = true
	}

	existing := make(map[wishlistKey]bool, len(current))
	for _, e := range current {
		key := wishlistKey{itemID: e.ItemID, prio: e.Priority}
		existing[key] = true
		if !wanted[key] {
			toDelete = append(toDelete, e.ID)
		}
	}

	for _, w := range want {
		key := wishlistKey{itemID: w.ItemID, prio: w.Prio}
		if !existing[key] {
			// дубль пары в одном запросе — та же запись
			existing[key] = true
			toAdd = append(toAdd, model.WishlistEntry{
				PlayerID: playerID,
				ItemID:   w.ItemID,
				Priority: w.Prio,
			})
		}
	}
	return toAdd, toDelete
}

// UploadAttendance обрабатывает выгрузку посещаемости: список имён вида
// "Name-Class,Name-Class,...". Неизвестные игроки создаются, посещение
// отмечается идемпотентно, после батча пересчитывается активность.
func (s *PlayerService) UploadAttendance(ctx context.Context, caller *model.User, req UploadRequest) error {
	if err := Allowed(caller, ActionBulkUpload, 0); err != nil {
		return err
	}

	day, err := resolveRaidDay(ctx, s.raids, req)
	if err != nil {
		return err
	}

	for _, token := range strings.Split(req.Data, ",") {
		name, class := splitNameClass(token, s.defaultClass)
		if name == "" {
			continue
		}

		player, err := s.findOrCreatePlayer(ctx, name, class)
		if err != nil {
			return err
		}

		if err := s.players.AddAttendance(ctx, player.ID, day.ID); err != nil {
			return err
		}
		if !player.IsActive {
			if err := s.players.SetActive(ctx, player.ID, true); err != nil {
				return err
			}
		}
	}

	return s.RecomputeActivity(ctx)
}

// RecomputeActivity пересчитывает производный флаг активности: игрок
// активен, если посещал хотя бы один из последних window рейдовых дней.
// Без рейдовых дней пересчитывать нечего.
func (s *PlayerService) RecomputeActivity(ctx context.Context) error {
	days, err := s.raids.ListRaidDays(ctx)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}

	recent := make(map[int64]bool, s.window)
	for i, day := range days {
		if i >= s.window {
			break
		}
		recent[day.ID] = true
	}

	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return err
	}

	for i := range players {
		p := &players[i]
		active := false
		for _, day := range p.Attendance {
			if recent[day.ID] {
				active = true
				break
			}
		}
		if p.IsActive != active {
			if err := s.players.SetActive(ctx, p.ID, active); err != nil {
				return err
			}
			s.logger.Infow("activity recomputed", "player", p.Name, "active", active)
		}
	}
	return nil
}

// findOrCreatePlayer ищет персонажа по имени без учёта регистра; отсутствие —
// не ошибка, персонаж заводится с дефолтами выгрузки.
func (s *PlayerService) findOrCreatePlayer(ctx context.Context, name, class string) (*model.Player, error) {
	player, err := s.players.GetPlayerByName(ctx, name)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.players.CreatePlayer(ctx, &model.Player{
		Name:     NormalizeName(name),
		Class:    classCode(class),
		Role:     model.RoleCodes["DPS"],
		Rank:     model.RankPug,
		IsActive: true,
	})
}
