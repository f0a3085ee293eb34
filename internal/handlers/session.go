package handlers

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/middleware"
	"ContinuumLoot/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// SessionHandler обрабатывает регистрацию, вход/выход и текущую сессию.
type SessionHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewSessionHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *SessionHandler {
	return &SessionHandler{UserService: userService, Logger: logger, Config: cfg}
}

// currentUserResponse — ответ и signup/login, и getCurrentUser.
type currentUserResponse struct {
	Player *service.CurrentPlayerDTO `json:"player"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// isDomainConflict — конфликты, которые клиент различает по payload,
// а не по HTTP-статусу.
func isDomainConflict(err error) bool {
	return errors.Is(err, service.ErrAlreadySignedUp) ||
		errors.Is(err, service.ErrCharacterMissing) ||
		errors.Is(err, service.ErrWrongPassword)
}

// Signup регистрирует учётную запись и сразу логинит её.
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Signup: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, player, err := h.UserService.Signup(r.Context(), req)
	if isDomainConflict(err) {
		writeJSON(w, h.Logger, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Signup: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{Player: player})
}

// Login проверяет пароль и ставит сессионный cookie.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"player_name"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, player, err := h.UserService.Login(r.Context(), req.PlayerName, req.Password)
	if isDomainConflict(err) {
		writeJSON(w, h.Logger, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{Player: player})
}

// Logout гасит сессию. Идемпотентен: без сессии тоже 204.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser отдаёт персонажа текущей сессии или {"player": null}.
// Никогда не отвечает ошибкой; повисшая сессия гасится.
func (h *SessionHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{})
		return
	}

	player, err := h.UserService.CurrentPlayer(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("CurrentUser: lookup failed", "user_id", uid, "error", err)
		writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{})
		return
	}
	if player == nil {
		// Сессия указывает в никуда — разлогиниваем
		middleware.ClearLoginCookie(w)
		writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{})
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, currentUserResponse{Player: player})
}

// ListUsers — учётные записи с уровнями доступа (офицер и выше).
func (h *SessionHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	users, err := h.UserService.ListUsers(r.Context(), user)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, users)
}

// UpdateUser меняет уровень доступа учётной записи (только админ).
func (h *SessionHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			ID              int64 `json:"id"`
			PermissionLevel int   `json:"permission_level"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.UserService.SetPermissionLevel(r.Context(), user, req.User.ID, req.User.PermissionLevel); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetUserPassword ставит новый пароль учётной записи (только админ).
func (h *SessionHandler) ResetUserPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			ID       int64  `json:"id"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := caller(r, h.UserService)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}

	if err := h.UserService.ResetPassword(r.Context(), user, req.User.ID, req.User.Password); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
