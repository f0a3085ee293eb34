package handlers

import (
	"ContinuumLoot/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// LootHandler — история выдач и её массовая загрузка.
type LootHandler struct {
	LootService *service.LootService
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewLootHandler(lootService *service.LootService, userService *service.UserService, logger *zap.SugaredLogger) *LootHandler {
	return &LootHandler{LootService: lootService, UserService: userService, Logger: logger}
}

func (h *LootHandler) List(w http.ResponseWriter, r *http.Request) {
	lines, err := h.LootService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, lines)
}

// decodeRow разбирает тело {"row": {...}}.
func (h *LootHandler) decodeRow(w http.ResponseWriter, r *http.Request, op string) (service.LootHistoryDTO, bool) {
	var req struct {
		Row service.LootHistoryDTO `json:"row"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw(op+": invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return service.LootHistoryDTO{}, false
	}
	return req.Row, true
}

func (h *LootHandler) Add(w http.ResponseWriter, r *http.Request) {
	row, ok := h.decodeRow(w, r, "AddLootHistory")
	if !ok {
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.LootService.Add(r.Context(), user, row); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LootHandler) Update(w http.ResponseWriter, r *http.Request) {
	row, ok := h.decodeRow(w, r, "UpdateLootHistory")
	if !ok {
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.LootService.Update(r.Context(), user, row); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет строку по id; уже отсутствующая — всё равно 204.
func (h *LootHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("DeleteLootHistory: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.LootService.Delete(r.Context(), user, req.ID); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Upload — массовая загрузка истории лута из экспорта аддона (только админ).
func (h *LootHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req service.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UploadLootHistory: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.LootService.Upload(r.Context(), user, req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
