package mines

import (
	"log"
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/mines"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.MinesService
}

type Handler struct {
	serv service.MinesService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bet, err := converter.ToMinesBet(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Start(r.Context(), userID, bet)
	if err != nil {
		log.Println("Mines start error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMinesStateResponse(state))
}

func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.RevealRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Reveal(r.Context(), userID, payload.Cell)
	if err != nil {
		log.Println("Mines reveal error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMinesStateResponse(state))
}

func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.CashOut(r.Context(), userID)
	if err != nil {
		log.Println("Mines cashout error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMinesStateResponse(state))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.Reset(r.Context(), userID)
	if err != nil {
		log.Println("Mines reset error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMinesStateResponse(state))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		log.Println("Mines state error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMinesStateResponse(state))
}
