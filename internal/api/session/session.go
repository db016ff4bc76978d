package session

import (
	"log"
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/session"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SessionService
}

type Handler struct {
	serv service.SessionService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create открывает игровую сессию: создает пользователя со стартовым
// балансом и возвращает access_token и session_id через cookie
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Create(r.Context(), requestBody.Name)
	if err != nil {
		log.Println("Create session error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	setSessionIDCookie(w, data.SessionID)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCreateSessionResponse(data))
}

// Balance возвращает текущий баланс сессии
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		log.Println("Balance error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "no session_id cookie", http.StatusUnauthorized)
		return
	}

	sessionID := c.Value

	err = h.serv.Logout(r.Context(), sessionID)
	if err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	deleteSessionIDCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
}

// deleteSessionIDCookie удаляет cookie с session_id
func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
