package service

import (
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DisenchantResponse — такие записи выгрузки лута не считаются выдачей.
const DisenchantResponse = "Disenchant"

// LootService — история выдач и её массовая загрузка из аддона.
type LootService struct {
	loot         repo.LootRepository
	items        repo.ItemRepository
	players      repo.PlayerRepository
	raids        repo.RaidRepository
	roster       *PlayerService
	defaultClass string
	logger       *zap.SugaredLogger
}

func NewLootService(
	loot repo.LootRepository,
	items repo.ItemRepository,
	players repo.PlayerRepository,
	raids repo.RaidRepository,
	roster *PlayerService,
	logger *zap.SugaredLogger,
) *LootService {
	return &LootService{
		loot:         loot,
		items:        items,
		players:      players,
		raids:        raids,
		roster:       roster,
		defaultClass: roster.defaultClass,
		logger:       logger,
	}
}

func (s *LootService) List(ctx context.Context) ([]LootHistoryDTO, error) {
	lines, err := s.loot.ListLootHistory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LootHistoryDTO, 0, len(lines))
	for i := range lines {
		out = append(out, LootHistoryToDTO(&lines[i]))
	}
	return out, nil
}

func (s *LootService) Add(ctx context.Context, caller *model.User, dto LootHistoryDTO) error {
	if err := Allowed(caller, ActionEditLootHistory, 0); err != nil {
		return err
	}
	_, err := s.loot.CreateLootHistory(ctx, &model.LootHistory{
		RaidDayID: dto.RaidDayID,
		ItemID:    dto.ItemID,
		PlayerID:  dto.PlayerID,
	})
	return err
}

func (s *LootService) Update(ctx context.Context, caller *model.User, dto LootHistoryDTO) error {
	if err := Allowed(caller, ActionEditLootHistory, 0); err != nil {
		return err
	}
	return s.loot.UpdateLootHistory(ctx, &model.LootHistory{
		ID:        dto.ID,
		RaidDayID: dto.RaidDayID,
		ItemID:    dto.ItemID,
		PlayerID:  dto.PlayerID,
	})
}

// Delete удаляет строку истории; уже отсутствующая — успех без эффекта.
func (s *LootService) Delete(ctx context.Context, caller *model.User, id int64) error {
	if err := Allowed(caller, ActionEditLootHistory, 0); err != nil {
		return err
	}
	return s.loot.DeleteLootHistory(ctx, id)
}

// awardRecord — одна запись экспорта лут-аддона.
type awardRecord struct {
	Player   string `json:"player"`
	ItemID   int64  `json:"itemID"`
	Response string `json:"response"`
}

// Upload обрабатывает выгрузку истории лута. Data — строка с JSON-массивом
// записей. "Disenchant" пропускается; предмет из чужого рейда молча
// пропускается (лут-таблицы привязаны к рейду); выдача снимает
// соответствующие строки вишлиста и индивидуального приоритета.
func (s *LootService) Upload(ctx context.Context, caller *model.User, req UploadRequest) error {
	if err := Allowed(caller, ActionBulkUpload, 0); err != nil {
		return err
	}

	var records []awardRecord
	if err := json.Unmarshal([]byte(req.Data), &records); err != nil {
		return fmt.Errorf("%w: data is not a JSON array: %v", ErrInvalid, err)
	}

	day, err := resolveRaidDay(ctx, s.raids, req)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.Response == DisenchantResponse {
			continue
		}

		// Имя из аддона приходит как "Name-Realm"
		name, _ := splitNameClass(rec.Player, s.defaultClass)
		if name == "" {
			continue
		}

		item, err := s.items.GetItemByID(ctx, rec.ItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warnw("loot upload: unknown item skipped", "item_id", rec.ItemID)
			continue
		}
		if err != nil {
			return err
		}
		if item.RaidID != day.RaidID {
			s.logger.Warnw("loot upload: item from another raid skipped",
				"item", item.Name, "item_raid", item.RaidID, "day_raid", day.RaidID)
			continue
		}

		player, err := s.roster.findOrCreatePlayer(ctx, name, s.defaultClass)
		if err != nil {
			return err
		}

		if _, err := s.loot.CreateLootHistory(ctx, &model.LootHistory{
			RaidDayID: day.ID,
			ItemID:    item.ID,
			PlayerID:  player.ID,
		}); err != nil {
			return err
		}

		// Полученный предмет больше незачем просить
		if err := s.players.DeleteWishlistFor(ctx, player.ID, item.ID); err != nil {
			return err
		}
		if err := s.items.DeleteIndividualPrioFor(ctx, player.ID, item.ID); err != nil {
			return err
		}
	}

	return nil
}
