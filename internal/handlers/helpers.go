package handlers

import (
	"ContinuumLoot/internal/middleware"
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON сериализует ответ; ошибки кодирования уже не исправить, только залогировать.
func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("failed to encode response", "error", err)
	}
}

// caller достаёт учётную запись текущей сессии. Анонимный запрос или
// повисшая сессия — nil без ошибки, решение за политикой доступа.
func caller(r *http.Request, users *service.UserService) (*model.User, error) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, nil
	}
	return users.GetUser(r.Context(), uid)
}

// respondError транслирует ошибку сервиса в таксономию ответов:
// нет прав или бессмысленный запрос — 400 с плоским текстом, остальное — 500.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "insufficient permission", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalid):
		http.Error(w, "invalid request", http.StatusBadRequest)
	default:
		logger.Errorw("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
