package main

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/handlers"
	"ContinuumLoot/internal/middleware"
	"ContinuumLoot/internal/repo"
	"ContinuumLoot/internal/service"
	"context"
	"net/http"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	playerRepo := repo.NewPlayerRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	raidRepo := repo.NewRaidRepository(gormDB)
	lootRepo := repo.NewLootRepository(gormDB)

	userService := service.NewUserService(userRepo, playerRepo)
	playerService := service.NewPlayerService(playerRepo, raidRepo, cfg, sugar)
	itemService := service.NewItemService(itemRepo)
	raidService := service.NewRaidService(raidRepo)
	lootService := service.NewLootService(lootRepo, itemRepo, playerRepo, raidRepo, playerService, sugar)

	// периодический пересчёт активности по расписанию (если задано)
	if cfg.ActivityCron != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.ActivityCron, func() {
			if err := playerService.RecomputeActivity(ctx); err != nil {
				sugar.Errorw("activity recompute failed", "error", err)
			}
		})
		if err != nil {
			sugar.Fatalw("invalid activity cron schedule", "schedule", cfg.ActivityCron, "error", err)
		}
		c.Start()
		defer c.Stop()
	}

	h := handlers.NewHandler(userService, playerService, itemService, raidService, lootService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"AttendanceWindow", cfg.AttendanceWindow,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
