package handlers

import (
	"ContinuumLoot/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// RaidHandler — публичные справочники рейдов и рейдовых дней.
type RaidHandler struct {
	RaidService *service.RaidService
	Logger      *zap.SugaredLogger
}

func NewRaidHandler(raidService *service.RaidService, logger *zap.SugaredLogger) *RaidHandler {
	return &RaidHandler{RaidService: raidService, Logger: logger}
}

func (h *RaidHandler) ListRaids(w http.ResponseWriter, r *http.Request) {
	raids, err := h.RaidService.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, raids)
}

func (h *RaidHandler) ListRaidDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.RaidService.ListDays(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, days)
}
