package dice

import (
	"log"
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/dice"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.DiceService
}

type Handler struct {
	serv service.DiceService
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

	bet, err := converter.ToDiceBet(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Place(r.Context(), userID, bet)
	if err != nil {
		log.Println("Dice place error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDiceStateResponse(state))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Reset(r.Context(), userID)
	if err != nil {
		log.Println("Dice reset error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDiceStateResponse(state))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		log.Println("Dice state error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDiceStateResponse(state))
}
