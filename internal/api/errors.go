package api

import (
	"errors"
	"net/http"

	"minigames_backend/internal/model"
)

// StatusFromError сопоставляет ошибки движка HTTP-статусам:
// плохие параметры и нехватка средств - 400, недопустимый переход - 409
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidParameter),
		errors.Is(err, model.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrNoActiveGame):
		return http.StatusConflict
	case errors.Is(err, model.ErrDeckExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
