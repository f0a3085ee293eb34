package handlers

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/middleware"
	"ContinuumLoot/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	playerService *service.PlayerService,
	itemService *service.ItemService,
	raidService *service.RaidService,
	lootService *service.LootService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	sessionHandler := NewSessionHandler(userService, logger, config)
	playerHandler := NewPlayerHandler(playerService, userService, logger)
	itemHandler := NewItemHandler(itemService, userService, logger)
	raidHandler := NewRaidHandler(raidService, logger)
	lootHandler := NewLootHandler(lootService, userService, logger)

	// Public listing routes
	r.Get("/api/getPlayers", playerHandler.List)
	r.Get("/api/getItems", itemHandler.List)
	r.Get("/api/getRaids", raidHandler.ListRaids)
	r.Get("/api/getRaidDays", raidHandler.ListRaidDays)
	r.Get("/api/getLootHistory", lootHandler.List)

	// Session routes
	r.Get("/api/getCurrentUser", sessionHandler.CurrentUser)
	r.Get("/api/getUsers", sessionHandler.ListUsers)
	r.Get("/api/logout", sessionHandler.Logout)
	r.Post("/api/signup", sessionHandler.Signup)
	r.Post("/api/login", sessionHandler.Login)

	// Mutation routes
	r.Post("/api/updatePlayer", playerHandler.Update)
	r.Post("/api/updateItem", itemHandler.Update)
	r.Post("/api/updateUser", sessionHandler.UpdateUser)
	r.Post("/api/resetUserPassword", sessionHandler.ResetUserPassword)
	r.Post("/api/addLootHistory", lootHandler.Add)
	r.Post("/api/updateLootHistory", lootHandler.Update)
	r.Post("/api/deleteLootHistory", lootHandler.Delete)
	r.Post("/api/uploadAttendance", playerHandler.UploadAttendance)
	r.Post("/api/uploadLootHistory", lootHandler.Upload)

	return &Handler{Router: r}
}
