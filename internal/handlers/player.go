package handlers

import (
	"ContinuumLoot/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// PlayerHandler — ростер: чтение, обновление, выгрузка посещаемости.
type PlayerHandler struct {
	PlayerService *service.PlayerService
	UserService   *service.UserService
	Logger        *zap.SugaredLogger
}

func NewPlayerHandler(playerService *service.PlayerService, userService *service.UserService, logger *zap.SugaredLogger) *PlayerHandler {
	return &PlayerHandler{PlayerService: playerService, UserService: userService, Logger: logger}
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.PlayerService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, players)
}

// Update применяет полное целевое состояние персонажа из тела {"player": {...}}.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Player service.PlayerDTO `json:"player"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdatePlayer: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.PlayerService.Update(r.Context(), user, req.Player); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadAttendance — массовая загрузка посещаемости (только админ).
func (h *PlayerHandler) UploadAttendance(w http.ResponseWriter, r *http.Request) {
	var req service.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UploadAttendance: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.PlayerService.UploadAttendance(r.Context(), user, req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
