package crash

import (
	"log"
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/crash"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/service"
	"minigames_backend/internal/ws"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CrashService
	Hub  *ws.Hub
}

type Handler struct {
	serv service.CrashService
	hub  *ws.Hub
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, hub: deps.Hub}
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

	amount, err := converter.ToCrashAmount(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.Place(r.Context(), userID, amount)
	if err != nil {
		log.Println("Crash place error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(state))
}

func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.CashOut(r.Context(), userID)
	if err != nil {
		log.Println("Crash cashout error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(state))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		log.Println("Crash state error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(state))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	points, err := h.serv.History(r.Context(), userID)
	if err != nil {
		log.Println("Crash history error:", err)
		http.Error(w, err.Error(), api.StatusFromError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashHistoryResponse(points))
}

// Feed апгрейдит запрос в websocket и подписывает на кадры раундов
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.hub.Upgrade(w, r, userID); err != nil {
		log.Println("Crash feed upgrade error:", err)
	}
}
