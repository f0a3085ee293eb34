package service

import (
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// NewRaidDaySentinel — значение raid_day_id, по которому выгрузка просит
// создать новый рейдовый день вместо использования существующего.
const NewRaidDaySentinel = "New"

// UploadRequest — общий вход обеих массовых выгрузок (посещаемость и лут).
// raid_day_id приходит либо числом (существующий день), либо строкой "New".
type UploadRequest struct {
	Data        string `json:"data"`
	RaidDayID   any    `json:"raid_day_id"`
	RaidID      any    `json:"raid_id"`
	RaidDayName string `json:"raid_day_name"`
	Date        string `json:"date"`
}

// resolveRaidDay возвращает существующий день или создаёт новый по сентинелу.
func resolveRaidDay(ctx context.Context, raids repo.RaidRepository, req UploadRequest) (*model.RaidDay, error) {
	if s, ok := req.RaidDayID.(string); ok {
		if s != NewRaidDaySentinel {
			return nil, fmt.Errorf("%w: bad raid_day_id %q", ErrInvalid, s)
		}
		date, err := time.Parse(model.DateFormat, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalid, req.Date)
		}
		raidID, ok := toInt64(req.RaidID)
		if !ok {
			return nil, fmt.Errorf("%w: raid_id required for a new raid day", ErrInvalid)
		}
		if _, err := raids.GetRaidByID(ctx, raidID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown raid %d", ErrInvalid, raidID)
			}
			return nil, err
		}
		return raids.CreateRaidDay(ctx, &model.RaidDay{
			Name:   req.RaidDayName,
			Date:   date,
			RaidID: raidID,
		})
	}

	id, ok := toInt64(req.RaidDayID)
	if !ok {
		return nil, fmt.Errorf("%w: raid_day_id required", ErrInvalid)
	}
	day, err := raids.GetRaidDayByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown raid day %d", ErrInvalid, id)
	}
	return day, err
}

// toInt64 достаёт id из декодированного JSON-значения: число или строка цифр.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// splitNameClass разбирает токен выгрузки "Name-Class". Суффикс опционален:
// без него возвращается fallback-класс. Тот же разбор отрезает "-Realm" у
// имён из лут-аддона.
func splitNameClass(token, fallbackClass string) (name, class string) {
	parts := strings.SplitN(strings.TrimSpace(token), "-", 2)
	name = strings.TrimSpace(parts[0])
	class = fallbackClass
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		class = strings.TrimSpace(parts[1])
	}
	return name, class
}
