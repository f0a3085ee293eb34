package handlers

import (
	"ContinuumLoot/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ItemHandler — предметы и их приоритетные списки.
type ItemHandler struct {
	ItemService *service.ItemService
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewItemHandler(itemService *service.ItemService, userService *service.UserService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, UserService: userService, Logger: logger}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, items)
}

// Update применяет полное целевое состояние предмета из тела {"item": {...}}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Item service.ItemDTO `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateItem: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.ItemService.Update(r.Context(), user, req.Item); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
