package blackjack

import (
	"log"
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/blackjack"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.PlaceRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := converter.ToBlackjackAmount(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Place(r.Context(), userID, amount)
	if err != nil {
		log.Println("Blackjack place error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(state))
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Hit(r.Context(), userID)
	if err != nil {
		log.Println("Blackjack hit error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(state))
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Stand(r.Context(), userID)
	if err != nil {
		log.Println("Blackjack stand error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(state))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Reset(r.Context(), userID)
	if err != nil {
		log.Println("Blackjack reset error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(state))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		log.Println("Blackjack state error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(state))
}
