package main

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// Одноразовый загрузчик справочных данных (рейды, боссы, предметы,
// связка предмет-босс) из CSV-файлов в пустую базу.
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		_ = logger.Sync()
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	raidRepo := repo.NewRaidRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	ctx := context.Background()
	loader := &seedLoader{dir: cfg.SeedDataDir, raids: raidRepo, items: itemRepo, logger: sugar}

	if err := loader.run(ctx); err != nil {
		sugar.Fatalw("seed failed", "error", err)
	}
	sugar.Infow("seed complete")
}

type seedLoader struct {
	dir    string
	raids  repo.RaidRepository
	items  repo.ItemRepository
	logger *zap.SugaredLogger
}

func (l *seedLoader) run(ctx context.Context) error {
	raidIDs, err := l.loadRaids(ctx)
	if err != nil {
		return fmt.Errorf("raids: %w", err)
	}
	bossRaid, err := l.loadBosses(ctx)
	if err != nil {
		return fmt.Errorf("bosses: %w", err)
	}
	if err := l.loadItems(ctx, raidIDs, bossRaid); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	return nil
}

// readCSV читает файл целиком и отдаёт строки как map по заголовку.
func (l *seedLoader) readCSV(name string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *seedLoader) loadRaids(ctx context.Context) ([]int64, error) {
	rows, err := l.readCSV("raid.csv")
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		id, _ := strconv.ParseInt(row["id"], 10, 64)
		raid, err := l.raids.CreateRaid(ctx, &model.Raid{
			ID:        id,
			Name:      row["name"],
			ShortName: row["short_name"],
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, raid.ID)
	}
	l.logger.Infow("raids loaded", "count", len(ids))
	return ids, nil
}

// loadBosses возвращает отображение boss_id -> raid_id.
func (l *seedLoader) loadBosses(ctx context.Context) (map[int64]int64, error) {
	rows, err := l.readCSV("bosses.csv")
	if err != nil {
		return nil, err
	}

	bossRaid := make(map[int64]int64, len(rows))
	for _, row := range rows {
		id, _ := strconv.ParseInt(row["id"], 10, 64)
		raidID, _ := strconv.ParseInt(row["raid_id"], 10, 64)
		boss, err := l.raids.CreateBoss(ctx, &model.Boss{ID: id, Name: row["name"], RaidID: raidID})
		if err != nil {
			return nil, err
		}
		bossRaid[boss.ID] = boss.RaidID
	}
	l.logger.Infow("bosses loaded", "count", len(bossRaid))
	return bossRaid, nil
}

func (l *seedLoader) loadItems(ctx context.Context, raidIDs []int64, bossRaid map[int64]int64) error {
	if len(raidIDs) == 0 {
		return fmt.Errorf("no raids loaded")
	}

	rows, err := l.readCSV("items.csv")
	if err != nil {
		return err
	}

	// bossloot.csv связывает предмет с боссом; рейд предмета берётся
	// от босса, без связки остаётся первый рейд.
	lootRows, err := l.readCSV("bossloot.csv")
	if err != nil {
		return err
	}
	itemBosses := make(map[int64][]int64)
	for _, row := range lootRows {
		itemID, _ := strconv.ParseInt(row["item_id"], 10, 64)
		bossID, _ := strconv.ParseInt(row["boss_id"], 10, 64)
		itemBosses[itemID] = append(itemBosses[itemID], bossID)
	}

	count := 0
	for _, row := range rows {
		id, _ := strconv.ParseInt(row["id"], 10, 64)

		var tier *int16
		if n, err := strconv.ParseInt(row["tier"], 10, 16); err == nil {
			t := int16(n)
			tier = &t
		}

		category := model.ItemCategories[row["category"]]

		raidID := raidIDs[0]
		bosses := make([]model.Boss, 0, len(itemBosses[id]))
		for _, bossID := range itemBosses[id] {
			bosses = append(bosses, model.Boss{ID: bossID})
			raidID = bossRaid[bossID]
		}

		_, err := l.items.CreateItem(ctx, &model.Item{
			ID:       id,
			Name:     row["name"],
			Type:     row["type"],
			Tier:     tier,
			Category: category,
			Notes:    row["notes"],
			RaidID:   raidID,
			Bosses:   bosses,
		})
		if err != nil {
			return err
		}
		count++
	}
	l.logger.Infow("items loaded", "count", count)
	return nil
}
